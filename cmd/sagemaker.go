package cmd

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/cloudshim/awslite/internal/sagemaker"
	"github.com/cloudshim/awslite/internal/utils"
)

// NewSageMakerCmd groups the SageMaker subcommands.
func NewSageMakerCmd() *cobra.Command {
	var profile string
	var region string

	cmd := &cobra.Command{
		Use:   "sagemaker",
		Short: "Manage SageMaker training jobs and endpoints",
	}
	cmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	cmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")

	cmd.AddCommand(newTrainingJobsCmd(&profile, &region))
	cmd.AddCommand(newDescribeTrainingJobCmd(&profile, &region))
	cmd.AddCommand(newStopTrainingJobCmd(&profile, &region))
	cmd.AddCommand(newWaitTrainingJobCmd(&profile, &region))
	cmd.AddCommand(newEndpointsCmd(&profile, &region))
	cmd.AddCommand(newDescribeEndpointCmd(&profile, &region))
	cmd.AddCommand(newDeleteEndpointCmd(&profile, &region))

	return cmd
}

func newTrainingJobsCmd(profile, region *string) *cobra.Command {
	var status string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "training-jobs",
		Short: "List training jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			jobs, err := sagemaker.AllTrainingJobs(cmd.Context(), client.SageMaker, status)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(jobs)
			}

			now := time.Now()
			w := newTable()
			fmt.Fprintln(w, "NAME\tSTATUS\tCREATED\tELAPSED")
			for _, j := range jobs {
				created, elapsed := "—", "—"
				if j.CreationTime != nil {
					created = utils.TimeOrDash(j.CreationTime.Std(), utils.DateTime)
					var end time.Time
					if j.TrainingEndTime != nil {
						end = j.TrainingEndTime.Std()
					}
					elapsed = utils.Duration(utils.ElapsedBetween(j.CreationTime.Std(), end, now))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					aws.ToString(j.TrainingJobName), aws.ToString(j.TrainingJobStatus), created, elapsed)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (InProgress, Completed, Failed, Stopping, Stopped)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newDescribeTrainingJobCmd(profile, region *string) *cobra.Command {
	return &cobra.Command{
		Use:   "describe-training-job <name>",
		Short: "Describe a training job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			job, err := client.SageMaker.DescribeTrainingJob(cmd.Context(), &sagemaker.DescribeTrainingJobInput{
				TrainingJobName: aws.String(args[0]),
			})
			if err != nil {
				return err
			}
			return printJSON(job)
		},
	}
}

func newStopTrainingJobCmd(profile, region *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stop-training-job <name>",
		Short: "Stop a training job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			if err := client.SageMaker.StopTrainingJob(cmd.Context(), &sagemaker.StopTrainingJobInput{
				TrainingJobName: aws.String(args[0]),
			}); err != nil {
				return err
			}
			fmt.Printf("Stopping training job %s\n", args[0])
			return nil
		},
	}
}

func newWaitTrainingJobCmd(profile, region *string) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wait-training-job <name>",
		Short: "Wait for a training job to complete or stop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			waiter := sagemaker.NewTrainingJobCompletedOrStoppedWaiter(client.SageMaker)
			out, err := waiter.Wait(cmd.Context(), &sagemaker.DescribeTrainingJobInput{
				TrainingJobName: aws.String(args[0]),
			}, timeout)
			if err != nil {
				return err
			}
			fmt.Printf("Training job %s finished with status %s\n",
				args[0], aws.ToString(out.TrainingJobStatus))
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Hour, "Maximum time to wait")
	return cmd
}

func newEndpointsCmd(profile, region *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List inference endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			endpoints, err := sagemaker.AllEndpoints(cmd.Context(), client.SageMaker)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(endpoints)
			}

			w := newTable()
			fmt.Fprintln(w, "NAME\tSTATUS\tCREATED")
			for _, e := range endpoints {
				created := "—"
				if e.CreationTime != nil {
					created = utils.TimeOrDash(e.CreationTime.Std(), utils.DateTime)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					aws.ToString(e.EndpointName), aws.ToString(e.EndpointStatus), created)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newDescribeEndpointCmd(profile, region *string) *cobra.Command {
	return &cobra.Command{
		Use:   "describe-endpoint <name>",
		Short: "Describe an inference endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			ep, err := client.SageMaker.DescribeEndpoint(cmd.Context(), &sagemaker.DescribeEndpointInput{
				EndpointName: aws.String(args[0]),
			})
			if err != nil {
				return err
			}
			return printJSON(ep)
		},
	}
}

func newDeleteEndpointCmd(profile, region *string) *cobra.Command {
	var wait bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "delete-endpoint <name>",
		Short: "Delete an inference endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			if err := client.SageMaker.DeleteEndpoint(cmd.Context(), &sagemaker.DeleteEndpointInput{
				EndpointName: aws.String(args[0]),
			}); err != nil {
				return err
			}
			if !wait {
				fmt.Printf("Deleting endpoint %s\n", args[0])
				return nil
			}

			waiter := sagemaker.NewEndpointDeletedWaiter(client.SageMaker)
			if err := waiter.Wait(cmd.Context(), &sagemaker.DescribeEndpointInput{
				EndpointName: aws.String(args[0]),
			}, timeout); err != nil {
				return err
			}
			fmt.Printf("Deleted endpoint %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait until the endpoint is gone")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Minute, "Maximum time to wait")
	return cmd
}
