// Package sagemaker is a hand-maintained client for a subset of the Amazon
// SageMaker API (training jobs, endpoints, tags) over the AWS JSON 1.1
// protocol.
package sagemaker

import (
	"context"
	"fmt"

	"github.com/cloudshim/awslite/internal/awsjson"
)

// Metadata describes the SageMaker service endpoint. The API endpoint
// carries an "api." label the signing name does not.
var Metadata = awsjson.Service{
	EndpointPrefix: "api.sagemaker",
	TargetPrefix:   "SageMaker",
	SigningName:    "sagemaker",
}

// RPCAPI is the transport subset the client needs; satisfied by
// *awsjson.Client.
type RPCAPI interface {
	Invoke(ctx context.Context, op string, in, out any) error
}

// Client calls SageMaker operations.
type Client struct {
	rpc RPCAPI
}

// NewClient creates a client over the given transport.
func NewClient(rpc RPCAPI) *Client {
	return &Client{rpc: rpc}
}

func (c *Client) CreateTrainingJob(ctx context.Context, in *CreateTrainingJobInput) (*CreateTrainingJobOutput, error) {
	if in == nil || in.TrainingJobName == nil {
		return nil, fmt.Errorf("CreateTrainingJob: TrainingJobName is required")
	}
	out := &CreateTrainingJobOutput{}
	if err := c.rpc.Invoke(ctx, "CreateTrainingJob", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) DescribeTrainingJob(ctx context.Context, in *DescribeTrainingJobInput) (*DescribeTrainingJobOutput, error) {
	out := &DescribeTrainingJobOutput{}
	if err := c.rpc.Invoke(ctx, "DescribeTrainingJob", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

// StopTrainingJob is asynchronous; the job transitions through Stopping
// before reaching Stopped.
func (c *Client) StopTrainingJob(ctx context.Context, in *StopTrainingJobInput) error {
	if err := c.rpc.Invoke(ctx, "StopTrainingJob", in, nil); err != nil {
		return convertError(err)
	}
	return nil
}

func (c *Client) ListTrainingJobs(ctx context.Context, in *ListTrainingJobsInput) (*ListTrainingJobsOutput, error) {
	out := &ListTrainingJobsOutput{}
	if err := c.rpc.Invoke(ctx, "ListTrainingJobs", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) CreateEndpointConfig(ctx context.Context, in *CreateEndpointConfigInput) (*CreateEndpointConfigOutput, error) {
	out := &CreateEndpointConfigOutput{}
	if err := c.rpc.Invoke(ctx, "CreateEndpointConfig", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) CreateEndpoint(ctx context.Context, in *CreateEndpointInput) (*CreateEndpointOutput, error) {
	out := &CreateEndpointOutput{}
	if err := c.rpc.Invoke(ctx, "CreateEndpoint", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) DescribeEndpoint(ctx context.Context, in *DescribeEndpointInput) (*DescribeEndpointOutput, error) {
	out := &DescribeEndpointOutput{}
	if err := c.rpc.Invoke(ctx, "DescribeEndpoint", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) DeleteEndpoint(ctx context.Context, in *DeleteEndpointInput) error {
	if err := c.rpc.Invoke(ctx, "DeleteEndpoint", in, nil); err != nil {
		return convertError(err)
	}
	return nil
}

func (c *Client) ListEndpoints(ctx context.Context, in *ListEndpointsInput) (*ListEndpointsOutput, error) {
	out := &ListEndpointsOutput{}
	if err := c.rpc.Invoke(ctx, "ListEndpoints", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) AddTags(ctx context.Context, in *AddTagsInput) (*AddTagsOutput, error) {
	out := &AddTagsOutput{}
	if err := c.rpc.Invoke(ctx, "AddTags", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) DeleteTags(ctx context.Context, in *DeleteTagsInput) error {
	if err := c.rpc.Invoke(ctx, "DeleteTags", in, nil); err != nil {
		return convertError(err)
	}
	return nil
}

func (c *Client) ListTags(ctx context.Context, in *ListTagsInput) (*ListTagsOutput, error) {
	out := &ListTagsOutput{}
	if err := c.rpc.Invoke(ctx, "ListTags", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}
