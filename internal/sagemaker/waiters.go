package sagemaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	smithytime "github.com/aws/smithy-go/time"
	smithywaiter "github.com/aws/smithy-go/waiter"
)

// WaiterOptions tune the polling loop shared by all waiters.
type WaiterOptions struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

func (o *WaiterOptions) applyDefaults(minDelay, maxDelay time.Duration) {
	if o.MinDelay == 0 {
		o.MinDelay = minDelay
	}
	if o.MaxDelay == 0 {
		o.MaxDelay = maxDelay
	}
}

// TrainingJobCompletedOrStoppedWaiter polls DescribeTrainingJob until the
// job reaches a terminal state.
type TrainingJobCompletedOrStoppedWaiter struct {
	client  *Client
	options WaiterOptions
}

func NewTrainingJobCompletedOrStoppedWaiter(client *Client, optFns ...func(*WaiterOptions)) *TrainingJobCompletedOrStoppedWaiter {
	options := WaiterOptions{}
	for _, fn := range optFns {
		fn(&options)
	}
	options.applyDefaults(30*time.Second, 120*time.Second)
	return &TrainingJobCompletedOrStoppedWaiter{client: client, options: options}
}

// Wait blocks until the job completes or stops, the job fails, or maxWait
// elapses.
func (w *TrainingJobCompletedOrStoppedWaiter) Wait(ctx context.Context, params *DescribeTrainingJobInput, maxWait time.Duration) (*DescribeTrainingJobOutput, error) {
	return waitFor(ctx, maxWait, w.options, func(ctx context.Context) (*DescribeTrainingJobOutput, waitState, error) {
		out, err := w.client.DescribeTrainingJob(ctx, params)
		if err != nil {
			return nil, waitFailed, err
		}
		switch aws.ToString(out.TrainingJobStatus) {
		case TrainingJobStatusCompleted, TrainingJobStatusStopped:
			return out, waitDone, nil
		case TrainingJobStatusFailed:
			return out, waitFailed, fmt.Errorf("training job failed: %s", aws.ToString(out.FailureReason))
		}
		return out, waitRetry, nil
	})
}

// EndpointInServiceWaiter polls DescribeEndpoint until the endpoint is
// InService.
type EndpointInServiceWaiter struct {
	client  *Client
	options WaiterOptions
}

func NewEndpointInServiceWaiter(client *Client, optFns ...func(*WaiterOptions)) *EndpointInServiceWaiter {
	options := WaiterOptions{}
	for _, fn := range optFns {
		fn(&options)
	}
	options.applyDefaults(30*time.Second, 120*time.Second)
	return &EndpointInServiceWaiter{client: client, options: options}
}

func (w *EndpointInServiceWaiter) Wait(ctx context.Context, params *DescribeEndpointInput, maxWait time.Duration) (*DescribeEndpointOutput, error) {
	return waitFor(ctx, maxWait, w.options, func(ctx context.Context) (*DescribeEndpointOutput, waitState, error) {
		out, err := w.client.DescribeEndpoint(ctx, params)
		if err != nil {
			return nil, waitFailed, err
		}
		switch aws.ToString(out.EndpointStatus) {
		case EndpointStatusInService:
			return out, waitDone, nil
		case EndpointStatusFailed:
			return out, waitFailed, fmt.Errorf("endpoint failed: %s", aws.ToString(out.FailureReason))
		}
		return out, waitRetry, nil
	})
}

// EndpointDeletedWaiter polls DescribeEndpoint until the endpoint no longer
// exists. A ResourceNotFound from the service is the success condition.
type EndpointDeletedWaiter struct {
	client  *Client
	options WaiterOptions
}

func NewEndpointDeletedWaiter(client *Client, optFns ...func(*WaiterOptions)) *EndpointDeletedWaiter {
	options := WaiterOptions{}
	for _, fn := range optFns {
		fn(&options)
	}
	options.applyDefaults(15*time.Second, 60*time.Second)
	return &EndpointDeletedWaiter{client: client, options: options}
}

func (w *EndpointDeletedWaiter) Wait(ctx context.Context, params *DescribeEndpointInput, maxWait time.Duration) error {
	_, err := waitFor(ctx, maxWait, w.options, func(ctx context.Context) (*DescribeEndpointOutput, waitState, error) {
		out, err := w.client.DescribeEndpoint(ctx, params)
		if err != nil {
			var nf *ResourceNotFound
			if errors.As(err, &nf) {
				return nil, waitDone, nil
			}
			return nil, waitFailed, err
		}
		return out, waitRetry, nil
	})
	return err
}

type waitState int

const (
	waitRetry waitState = iota
	waitDone
	waitFailed
)

// waitFor runs the SDK-style poll loop: check state, back off with jittered
// delays capped by the time remaining, stop at the deadline.
func waitFor[T any](ctx context.Context, maxWait time.Duration, options WaiterOptions, check func(context.Context) (T, waitState, error)) (T, error) {
	var zero T
	if maxWait <= 0 {
		return zero, fmt.Errorf("maximum wait time must be greater than zero")
	}

	ctx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	deadline := time.Now().Add(maxWait)
	for attempt := int64(1); ; attempt++ {
		out, state, err := check(ctx)
		switch state {
		case waitDone:
			return out, nil
		case waitFailed:
			return zero, err
		}

		remaining := time.Until(deadline)
		if remaining < options.MinDelay {
			return zero, fmt.Errorf("exceeded max wait time for waiter")
		}
		delay, err := smithywaiter.ComputeDelay(attempt, options.MinDelay, options.MaxDelay, remaining)
		if err != nil {
			return zero, fmt.Errorf("computing waiter delay: %w", err)
		}
		if err := smithytime.SleepWithContext(ctx, delay); err != nil {
			return zero, fmt.Errorf("exceeded max wait time for waiter: %w", err)
		}
	}
}
