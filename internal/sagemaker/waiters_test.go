package sagemaker

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cloudshim/awslite/internal/awsjson"
)

func fastWaiter(o *WaiterOptions) {
	o.MinDelay = time.Millisecond
	o.MaxDelay = 2 * time.Millisecond
}

func TestTrainingJobWaiter_Completes(t *testing.T) {
	calls := 0
	mock := &mockRPC{
		invokeFunc: func(ctx context.Context, op string, in, out any) error {
			calls++
			if calls < 3 {
				return respond(out, `{"TrainingJobName":"job","TrainingJobStatus":"InProgress"}`)
			}
			return respond(out, `{"TrainingJobName":"job","TrainingJobStatus":"Completed"}`)
		},
	}

	w := NewTrainingJobCompletedOrStoppedWaiter(NewClient(mock), fastWaiter)
	out, err := w.Wait(context.Background(), &DescribeTrainingJobInput{}, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *out.TrainingJobStatus != TrainingJobStatusCompleted {
		t.Errorf("status = %q", *out.TrainingJobStatus)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestTrainingJobWaiter_FailureIsTerminal(t *testing.T) {
	mock := &mockRPC{
		invokeFunc: func(ctx context.Context, op string, in, out any) error {
			return respond(out, `{"TrainingJobStatus":"Failed","FailureReason":"AlgorithmError: loss is NaN"}`)
		},
	}

	w := NewTrainingJobCompletedOrStoppedWaiter(NewClient(mock), fastWaiter)
	_, err := w.Wait(context.Background(), &DescribeTrainingJobInput{}, time.Second)
	if err == nil {
		t.Fatal("expected error for failed job")
	}
	if !strings.Contains(err.Error(), "loss is NaN") {
		t.Errorf("error should carry the failure reason, got %v", err)
	}
}

func TestTrainingJobWaiter_Timeout(t *testing.T) {
	mock := &mockRPC{
		invokeFunc: func(ctx context.Context, op string, in, out any) error {
			return respond(out, `{"TrainingJobStatus":"InProgress"}`)
		},
	}

	w := NewTrainingJobCompletedOrStoppedWaiter(NewClient(mock), fastWaiter)
	_, err := w.Wait(context.Background(), &DescribeTrainingJobInput{}, 20*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestEndpointDeletedWaiter_NotFoundIsSuccess(t *testing.T) {
	calls := 0
	mock := &mockRPC{
		invokeFunc: func(ctx context.Context, op string, in, out any) error {
			calls++
			if calls == 1 {
				return respond(out, `{"EndpointStatus":"Deleting"}`)
			}
			return fmt.Errorf("%s: %w", op, &awsjson.APIError{Code: "ResourceNotFound", StatusCode: 400})
		},
	}

	w := NewEndpointDeletedWaiter(NewClient(mock), fastWaiter)
	if err := w.Wait(context.Background(), &DescribeEndpointInput{}, time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestEndpointInServiceWaiter_RejectsZeroMaxWait(t *testing.T) {
	w := NewEndpointInServiceWaiter(NewClient(&mockRPC{}), fastWaiter)
	_, err := w.Wait(context.Background(), &DescribeEndpointInput{}, 0)
	if err == nil {
		t.Fatal("expected error for zero max wait")
	}
}
