package sagemaker

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// ListTrainingJobsPaginator pages through ListTrainingJobs results.
type ListTrainingJobsPaginator struct {
	client    *Client
	params    ListTrainingJobsInput
	nextToken *string
	firstPage bool
}

func NewListTrainingJobsPaginator(client *Client, params *ListTrainingJobsInput) *ListTrainingJobsPaginator {
	p := &ListTrainingJobsPaginator{client: client, firstPage: true}
	if params != nil {
		p.params = *params
	}
	p.nextToken = p.params.NextToken
	return p
}

func (p *ListTrainingJobsPaginator) HasMorePages() bool {
	return p.firstPage || (p.nextToken != nil && *p.nextToken != "")
}

func (p *ListTrainingJobsPaginator) NextPage(ctx context.Context) (*ListTrainingJobsOutput, error) {
	if !p.HasMorePages() {
		return nil, fmt.Errorf("no more pages available")
	}

	p.params.NextToken = p.nextToken
	out, err := p.client.ListTrainingJobs(ctx, &p.params)
	if err != nil {
		return nil, err
	}
	p.firstPage = false

	prev := p.nextToken
	p.nextToken = out.NextToken
	if prev != nil && p.nextToken != nil && *prev == *p.nextToken {
		p.nextToken = nil
	}
	return out, nil
}

// ListEndpointsPaginator pages through ListEndpoints results.
type ListEndpointsPaginator struct {
	client    *Client
	params    ListEndpointsInput
	nextToken *string
	firstPage bool
}

func NewListEndpointsPaginator(client *Client, params *ListEndpointsInput) *ListEndpointsPaginator {
	p := &ListEndpointsPaginator{client: client, firstPage: true}
	if params != nil {
		p.params = *params
	}
	p.nextToken = p.params.NextToken
	return p
}

func (p *ListEndpointsPaginator) HasMorePages() bool {
	return p.firstPage || (p.nextToken != nil && *p.nextToken != "")
}

func (p *ListEndpointsPaginator) NextPage(ctx context.Context) (*ListEndpointsOutput, error) {
	if !p.HasMorePages() {
		return nil, fmt.Errorf("no more pages available")
	}

	p.params.NextToken = p.nextToken
	out, err := p.client.ListEndpoints(ctx, &p.params)
	if err != nil {
		return nil, err
	}
	p.firstPage = false

	prev := p.nextToken
	p.nextToken = out.NextToken
	if prev != nil && p.nextToken != nil && *prev == *p.nextToken {
		p.nextToken = nil
	}
	return out, nil
}

// AllTrainingJobs drains the paginator, optionally filtered by status.
func AllTrainingJobs(ctx context.Context, client *Client, statusEquals string) ([]TrainingJobSummary, error) {
	params := &ListTrainingJobsInput{}
	if statusEquals != "" {
		params.StatusEquals = aws.String(statusEquals)
	}

	var jobs []TrainingJobSummary
	p := NewListTrainingJobsPaginator(client, params)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ListTrainingJobs: %w", err)
		}
		jobs = append(jobs, page.TrainingJobSummaries...)
	}
	return jobs, nil
}

// AllEndpoints drains the paginator and returns every endpoint summary.
func AllEndpoints(ctx context.Context, client *Client) ([]EndpointSummary, error) {
	var endpoints []EndpointSummary
	p := NewListEndpointsPaginator(client, nil)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ListEndpoints: %w", err)
		}
		endpoints = append(endpoints, page.Endpoints...)
	}
	return endpoints, nil
}
