package cmd

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/cloudshim/awslite/internal/identity"
)

// NewIdentityCmd groups the Cognito Identity subcommands.
func NewIdentityCmd() *cobra.Command {
	var profile string
	var region string

	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage Cognito identity pools",
	}
	cmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	cmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")

	cmd.AddCommand(newIdentityPoolsCmd(&profile, &region))
	cmd.AddCommand(newIdentityDescribeCmd(&profile, &region))
	cmd.AddCommand(newIdentityCreateCmd(&profile, &region))
	cmd.AddCommand(newIdentityDeleteCmd(&profile, &region))
	cmd.AddCommand(newIdentityGetIDCmd(&profile, &region))
	cmd.AddCommand(newIdentityTagsCmd(&profile, &region))

	return cmd
}

func newIdentityPoolsCmd(profile, region *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List identity pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			pools, err := identity.AllPools(cmd.Context(), client.Identity)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(pools)
			}

			w := newTable()
			fmt.Fprintln(w, "NAME\tPOOL ID")
			for _, p := range pools {
				fmt.Fprintf(w, "%s\t%s\n", identity.PoolName(p), aws.ToString(p.IdentityPoolId))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newIdentityDescribeCmd(profile, region *string) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <pool-id>",
		Short: "Describe an identity pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			pool, err := client.Identity.DescribeIdentityPool(cmd.Context(), &identity.DescribeIdentityPoolInput{
				IdentityPoolId: aws.String(args[0]),
			})
			if err != nil {
				return err
			}
			return printJSON(pool)
		},
	}
}

func newIdentityCreateCmd(profile, region *string) *cobra.Command {
	var allowUnauthenticated bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an identity pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			pool, err := client.Identity.CreateIdentityPool(cmd.Context(), &identity.CreateIdentityPoolInput{
				IdentityPoolName:               aws.String(args[0]),
				AllowUnauthenticatedIdentities: allowUnauthenticated,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created identity pool %s (%s)\n",
				aws.ToString(pool.IdentityPoolName), aws.ToString(pool.IdentityPoolId))
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowUnauthenticated, "allow-unauthenticated", false, "Allow unauthenticated identities")
	return cmd
}

func newIdentityDeleteCmd(profile, region *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <pool-id>",
		Short: "Delete an identity pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			if err := client.Identity.DeleteIdentityPool(cmd.Context(), &identity.DeleteIdentityPoolInput{
				IdentityPoolId: aws.String(args[0]),
			}); err != nil {
				return err
			}
			fmt.Printf("Deleted identity pool %s\n", args[0])
			return nil
		},
	}
}

func newIdentityGetIDCmd(profile, region *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get-id <pool-id>",
		Short: "Generate an identity id in a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			out, err := client.Identity.GetId(cmd.Context(), &identity.GetIdInput{
				IdentityPoolId: aws.String(args[0]),
			})
			if err != nil {
				return err
			}
			fmt.Println(aws.ToString(out.IdentityId))
			return nil
		},
	}
}

func newIdentityTagsCmd(profile, region *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tags <pool-arn>",
		Short: "List tags on an identity pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), *profile, *region)
			if err != nil {
				return err
			}
			client := sess.Client

			out, err := client.Identity.ListTagsForResource(cmd.Context(), &identity.ListTagsForResourceInput{
				ResourceArn: aws.String(args[0]),
			})
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "KEY\tVALUE")
			for k, v := range out.Tags {
				fmt.Fprintf(w, "%s\t%s\n", k, v)
			}
			return w.Flush()
		},
	}
}
