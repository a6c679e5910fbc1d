package browse

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	awsclient "github.com/cloudshim/awslite/internal/aws"
	"github.com/cloudshim/awslite/internal/awsjson"
	"github.com/cloudshim/awslite/internal/identity"
	"github.com/cloudshim/awslite/internal/sagemaker"
	"github.com/cloudshim/awslite/internal/tui/theme"
	"github.com/cloudshim/awslite/internal/utils"
)

type menuEntry struct {
	name string
	desc string
	open func() View
}

// NewRootView lists the browsable resource kinds.
func NewRootView(client *awsclient.ServiceClient) View {
	entries := []menuEntry{
		{"Identity Pools", "Cognito identity pools", func() View { return NewPoolsView(client.Identity) }},
		{"Training Jobs", "SageMaker training jobs", func() View { return NewTrainingJobsView(client.SageMaker) }},
		{"Endpoints", "SageMaker inference endpoints", func() View { return NewEndpointsView(client.SageMaker) }},
	}

	return NewTableView(TableViewConfig[menuEntry]{
		Title:       "awslite",
		LoadingText: "Loading...",
		Columns: []table.Column{
			{Title: "Resource", Width: 20},
			{Title: "Description", Width: 40},
		},
		FetchFunc: func(ctx context.Context) ([]menuEntry, error) {
			return entries, nil
		},
		RowMapper: func(e menuEntry) table.Row {
			return table.Row{e.name, e.desc}
		},
		OnEnter: func(e menuEntry) tea.Cmd {
			return func() tea.Msg { return PushViewMsg{View: e.open()} }
		},
	})
}

// NewPoolsView lists Cognito identity pools.
func NewPoolsView(client *identity.Client) View {
	return NewTableView(TableViewConfig[identity.PoolSummary]{
		Title:       "Identity Pools",
		LoadingText: "Loading identity pools...",
		Columns: []table.Column{
			{Title: "Name", Width: 32},
			{Title: "Pool ID", Width: 44},
		},
		FetchFunc: func(ctx context.Context) ([]identity.PoolSummary, error) {
			return identity.AllPools(ctx, client)
		},
		RowMapper: func(p identity.PoolSummary) table.Row {
			return table.Row{identity.PoolName(p), awssdk.ToString(p.IdentityPoolId)}
		},
		CopyIDFunc: func(p identity.PoolSummary) string {
			return awssdk.ToString(p.IdentityPoolId)
		},
		OnEnter: func(p identity.PoolSummary) tea.Cmd {
			id := awssdk.ToString(p.IdentityPoolId)
			return func() tea.Msg {
				return PushViewMsg{View: NewDetailView(identity.PoolName(p), id, func(ctx context.Context) (string, error) {
					pool, err := client.DescribeIdentityPool(ctx, &identity.DescribeIdentityPoolInput{
						IdentityPoolId: awssdk.String(id),
					})
					if err != nil {
						return "", err
					}
					return renderPoolDetail(pool), nil
				})}
			}
		},
	})
}

func renderPoolDetail(pool *identity.IdentityPool) string {
	db := utils.NewDetailBuilder(26, theme.SectionStyle)
	db.Section("Pool")
	db.Row("Name", awssdk.ToString(pool.IdentityPoolName))
	db.Row("ID", awssdk.ToString(pool.IdentityPoolId))
	db.Row("Unauthenticated access", fmt.Sprintf("%t", pool.AllowUnauthenticatedIdentities))
	db.RowOpt("Developer provider", pool.DeveloperProviderName)

	if len(pool.SupportedLoginProviders) > 0 {
		db.Blank()
		db.Section("Login providers")
		db.SortedMap(pool.SupportedLoginProviders)
	}

	if len(pool.CognitoIdentityProviders) > 0 {
		db.Blank()
		db.Section("User pool providers")
		for _, p := range pool.CognitoIdentityProviders {
			db.Row(awssdk.ToString(p.ProviderName), awssdk.ToString(p.ClientId))
		}
	}
	return db.String()
}

// NewTrainingJobsView lists SageMaker training jobs.
func NewTrainingJobsView(client *sagemaker.Client) View {
	return NewTableView(TableViewConfig[sagemaker.TrainingJobSummary]{
		Title:       "Training Jobs",
		LoadingText: "Loading training jobs...",
		Columns: []table.Column{
			{Title: "Name", Width: 36},
			{Title: "Status", Width: 14},
			{Title: "Created", Width: 17},
		},
		FetchFunc: func(ctx context.Context) ([]sagemaker.TrainingJobSummary, error) {
			return sagemaker.AllTrainingJobs(ctx, client, "")
		},
		RowMapper: func(j sagemaker.TrainingJobSummary) table.Row {
			created := "—"
			if j.CreationTime != nil {
				created = utils.TimeOrDash(j.CreationTime.Std(), utils.DateTime)
			}
			return table.Row{
				awssdk.ToString(j.TrainingJobName),
				awssdk.ToString(j.TrainingJobStatus),
				created,
			}
		},
		CopyIDFunc: func(j sagemaker.TrainingJobSummary) string {
			return awssdk.ToString(j.TrainingJobArn)
		},
		OnEnter: func(j sagemaker.TrainingJobSummary) tea.Cmd {
			name := awssdk.ToString(j.TrainingJobName)
			arn := awssdk.ToString(j.TrainingJobArn)
			return func() tea.Msg {
				return PushViewMsg{View: NewDetailView(name, arn, func(ctx context.Context) (string, error) {
					job, err := client.DescribeTrainingJob(ctx, &sagemaker.DescribeTrainingJobInput{
						TrainingJobName: awssdk.String(name),
					})
					if err != nil {
						return "", err
					}
					return renderTrainingJobDetail(job), nil
				})}
			}
		},
	})
}

func renderTrainingJobDetail(job *sagemaker.DescribeTrainingJobOutput) string {
	db := utils.NewDetailBuilder(22, theme.SectionStyle)
	db.Section("Job")
	db.Row("Name", awssdk.ToString(job.TrainingJobName))
	db.Row("Status", theme.RenderStatus(awssdk.ToString(job.TrainingJobStatus)))
	db.RowOpt("Secondary status", job.SecondaryStatus)
	db.RowOpt("Failure reason", job.FailureReason)
	db.Row("ARN", awssdk.ToString(job.TrainingJobArn))

	db.Blank()
	db.Section("Timing")
	db.Row("Created", wireTimeOrDash(job.CreationTime))
	db.Row("Started", wireTimeOrDash(job.TrainingStartTime))
	db.Row("Ended", wireTimeOrDash(job.TrainingEndTime))

	if job.ResourceConfig != nil {
		db.Blank()
		db.Section("Resources")
		db.Row("Instance type", awssdk.ToString(job.ResourceConfig.InstanceType))
		db.Row("Instance count", fmt.Sprintf("%d", job.ResourceConfig.InstanceCount))
		db.Row("Volume size", fmt.Sprintf("%d GB", job.ResourceConfig.VolumeSizeInGB))
	}

	if len(job.HyperParameters) > 0 {
		db.Blank()
		db.Section("Hyperparameters")
		db.SortedMap(job.HyperParameters)
	}

	if job.ModelArtifacts != nil && job.ModelArtifacts.S3ModelArtifacts != nil {
		db.Blank()
		db.Section("Artifacts")
		db.Row("Model", awssdk.ToString(job.ModelArtifacts.S3ModelArtifacts))
	}
	return db.String()
}

// NewEndpointsView lists SageMaker inference endpoints.
func NewEndpointsView(client *sagemaker.Client) View {
	return NewTableView(TableViewConfig[sagemaker.EndpointSummary]{
		Title:       "Endpoints",
		LoadingText: "Loading endpoints...",
		Columns: []table.Column{
			{Title: "Name", Width: 36},
			{Title: "Status", Width: 16},
			{Title: "Created", Width: 17},
		},
		FetchFunc: func(ctx context.Context) ([]sagemaker.EndpointSummary, error) {
			return sagemaker.AllEndpoints(ctx, client)
		},
		RowMapper: func(e sagemaker.EndpointSummary) table.Row {
			created := "—"
			if e.CreationTime != nil {
				created = utils.TimeOrDash(e.CreationTime.Std(), utils.DateTime)
			}
			return table.Row{
				awssdk.ToString(e.EndpointName),
				awssdk.ToString(e.EndpointStatus),
				created,
			}
		},
		CopyIDFunc: func(e sagemaker.EndpointSummary) string {
			return awssdk.ToString(e.EndpointArn)
		},
		OnEnter: func(e sagemaker.EndpointSummary) tea.Cmd {
			name := awssdk.ToString(e.EndpointName)
			arn := awssdk.ToString(e.EndpointArn)
			return func() tea.Msg {
				return PushViewMsg{View: NewDetailView(name, arn, func(ctx context.Context) (string, error) {
					ep, err := client.DescribeEndpoint(ctx, &sagemaker.DescribeEndpointInput{
						EndpointName: awssdk.String(name),
					})
					if err != nil {
						return "", err
					}
					return renderEndpointDetail(ep), nil
				})}
			}
		},
	})
}

func renderEndpointDetail(ep *sagemaker.DescribeEndpointOutput) string {
	db := utils.NewDetailBuilder(22, theme.SectionStyle)
	db.Section("Endpoint")
	db.Row("Name", awssdk.ToString(ep.EndpointName))
	db.Row("Status", theme.RenderStatus(awssdk.ToString(ep.EndpointStatus)))
	db.RowOpt("Failure reason", ep.FailureReason)
	db.Row("Config", awssdk.ToString(ep.EndpointConfigName))
	db.Row("ARN", awssdk.ToString(ep.EndpointArn))
	db.Row("Created", wireTimeOrDash(ep.CreationTime))
	db.Row("Modified", wireTimeOrDash(ep.LastModifiedTime))

	if len(ep.ProductionVariants) > 0 {
		db.Blank()
		db.Section("Variants")
		for _, v := range ep.ProductionVariants {
			desc := fmt.Sprintf("%d instances", awssdk.ToInt32(v.CurrentInstanceCount))
			if v.CurrentWeight != nil {
				desc += fmt.Sprintf(", weight %.1f", awssdk.ToFloat64(v.CurrentWeight))
			}
			db.Row(awssdk.ToString(v.VariantName), desc)
		}
	}
	return db.String()
}

func wireTimeOrDash(t *awsjson.Time) string {
	if t == nil {
		return "—"
	}
	return utils.TimeOrDash(t.Std(), utils.DateTimeSec)
}
