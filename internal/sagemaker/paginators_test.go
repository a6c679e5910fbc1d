package sagemaker

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestAllTrainingJobs_Pagination(t *testing.T) {
	calls := 0
	mock := &mockRPC{
		invokeFunc: func(ctx context.Context, op string, in, out any) error {
			calls++
			params := in.(*ListTrainingJobsInput)
			if aws.ToString(params.StatusEquals) != "InProgress" {
				t.Errorf("StatusEquals = %q", aws.ToString(params.StatusEquals))
			}
			if calls == 1 {
				return respond(out, `{"TrainingJobSummaries":[{"TrainingJobName":"job-1","TrainingJobStatus":"InProgress"}],"NextToken":"p2"}`)
			}
			if aws.ToString(params.NextToken) != "p2" {
				t.Errorf("NextToken = %q, want p2", aws.ToString(params.NextToken))
			}
			return respond(out, `{"TrainingJobSummaries":[{"TrainingJobName":"job-2","TrainingJobStatus":"InProgress"}]}`)
		},
	}

	jobs, err := AllTrainingJobs(context.Background(), NewClient(mock), TrainingJobStatusInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d, want 2", len(jobs))
	}
	if aws.ToString(jobs[1].TrainingJobName) != "job-2" {
		t.Errorf("job name = %q", aws.ToString(jobs[1].TrainingJobName))
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestListEndpointsPaginator_SinglePage(t *testing.T) {
	mock := &mockRPC{
		invokeFunc: func(ctx context.Context, op string, in, out any) error {
			return respond(out, `{"Endpoints":[{"EndpointName":"resnet","EndpointStatus":"InService"}]}`)
		},
	}

	p := NewListEndpointsPaginator(NewClient(mock), nil)
	if !p.HasMorePages() {
		t.Fatal("HasMorePages() = false before first page")
	}
	page, err := p.NextPage(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Endpoints) != 1 {
		t.Fatalf("len(Endpoints) = %d", len(page.Endpoints))
	}
	if p.HasMorePages() {
		t.Error("HasMorePages() = true after final page")
	}
	if _, err := p.NextPage(context.Background()); err == nil {
		t.Error("NextPage after final page should error")
	}
}
