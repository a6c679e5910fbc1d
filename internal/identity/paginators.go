package identity

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
)

const defaultPageSize = 60

// ListIdentityPoolsPaginator pages through ListIdentityPools results.
type ListIdentityPoolsPaginator struct {
	client    *Client
	params    ListIdentityPoolsInput
	nextToken *string
	firstPage bool
}

// NewListIdentityPoolsPaginator creates a paginator. A zero MaxResults
// defaults to the service maximum page size.
func NewListIdentityPoolsPaginator(client *Client, params *ListIdentityPoolsInput) *ListIdentityPoolsPaginator {
	p := &ListIdentityPoolsPaginator{
		client:    client,
		firstPage: true,
	}
	if params != nil {
		p.params = *params
	}
	if p.params.MaxResults == 0 {
		p.params.MaxResults = defaultPageSize
	}
	p.nextToken = p.params.NextToken
	return p
}

// HasMorePages reports whether another page is available.
func (p *ListIdentityPoolsPaginator) HasMorePages() bool {
	return p.firstPage || (p.nextToken != nil && *p.nextToken != "")
}

// NextPage fetches the next page.
func (p *ListIdentityPoolsPaginator) NextPage(ctx context.Context) (*ListIdentityPoolsOutput, error) {
	if !p.HasMorePages() {
		return nil, fmt.Errorf("no more pages available")
	}

	p.params.NextToken = p.nextToken
	out, err := p.client.ListIdentityPools(ctx, &p.params)
	if err != nil {
		return nil, err
	}
	p.firstPage = false

	prev := p.nextToken
	p.nextToken = out.NextToken
	// A service echoing the same token forever would loop; stop instead.
	if prev != nil && p.nextToken != nil && *prev == *p.nextToken {
		p.nextToken = nil
	}
	return out, nil
}

// AllPools drains the paginator and returns every pool summary.
func AllPools(ctx context.Context, client *Client) ([]PoolSummary, error) {
	var pools []PoolSummary
	p := NewListIdentityPoolsPaginator(client, &ListIdentityPoolsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ListIdentityPools: %w", err)
		}
		pools = append(pools, page.IdentityPools...)
	}
	return pools, nil
}

// PoolName returns the pool's name or its id when unnamed.
func PoolName(s PoolSummary) string {
	if name := aws.ToString(s.IdentityPoolName); name != "" {
		return name
	}
	return aws.ToString(s.IdentityPoolId)
}
