// Package identity is a hand-maintained client for Amazon Cognito Identity
// over the AWS JSON 1.1 protocol.
package identity

import (
	"context"
	"fmt"

	"github.com/cloudshim/awslite/internal/awsjson"
)

// Metadata describes the Cognito Identity service endpoint.
var Metadata = awsjson.Service{
	EndpointPrefix: "cognito-identity",
	TargetPrefix:   "AWSCognitoIdentityService",
	SigningName:    "cognito-identity",
}

// RPCAPI is the transport subset the client needs; satisfied by
// *awsjson.Client.
type RPCAPI interface {
	Invoke(ctx context.Context, op string, in, out any) error
}

// Client calls Cognito Identity operations.
type Client struct {
	rpc RPCAPI
}

// NewClient creates a client over the given transport.
func NewClient(rpc RPCAPI) *Client {
	return &Client{rpc: rpc}
}

func (c *Client) CreateIdentityPool(ctx context.Context, in *CreateIdentityPoolInput) (*IdentityPool, error) {
	if in == nil || in.IdentityPoolName == nil {
		return nil, fmt.Errorf("CreateIdentityPool: IdentityPoolName is required")
	}
	out := &IdentityPool{}
	if err := c.rpc.Invoke(ctx, "CreateIdentityPool", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) DescribeIdentityPool(ctx context.Context, in *DescribeIdentityPoolInput) (*IdentityPool, error) {
	out := &IdentityPool{}
	if err := c.rpc.Invoke(ctx, "DescribeIdentityPool", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

// UpdateIdentityPool replaces the pool configuration wholesale; callers
// should describe first and modify the result.
func (c *Client) UpdateIdentityPool(ctx context.Context, in *IdentityPool) (*IdentityPool, error) {
	out := &IdentityPool{}
	if err := c.rpc.Invoke(ctx, "UpdateIdentityPool", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) DeleteIdentityPool(ctx context.Context, in *DeleteIdentityPoolInput) error {
	if err := c.rpc.Invoke(ctx, "DeleteIdentityPool", in, nil); err != nil {
		return convertError(err)
	}
	return nil
}

func (c *Client) ListIdentityPools(ctx context.Context, in *ListIdentityPoolsInput) (*ListIdentityPoolsOutput, error) {
	out := &ListIdentityPoolsOutput{}
	if err := c.rpc.Invoke(ctx, "ListIdentityPools", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) ListIdentities(ctx context.Context, in *ListIdentitiesInput) (*ListIdentitiesOutput, error) {
	out := &ListIdentitiesOutput{}
	if err := c.rpc.Invoke(ctx, "ListIdentities", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) GetId(ctx context.Context, in *GetIdInput) (*GetIdOutput, error) {
	out := &GetIdOutput{}
	if err := c.rpc.Invoke(ctx, "GetId", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) GetOpenIdToken(ctx context.Context, in *GetOpenIdTokenInput) (*GetOpenIdTokenOutput, error) {
	out := &GetOpenIdTokenOutput{}
	if err := c.rpc.Invoke(ctx, "GetOpenIdToken", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) GetCredentialsForIdentity(ctx context.Context, in *GetCredentialsForIdentityInput) (*GetCredentialsForIdentityOutput, error) {
	out := &GetCredentialsForIdentityOutput{}
	if err := c.rpc.Invoke(ctx, "GetCredentialsForIdentity", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}

func (c *Client) TagResource(ctx context.Context, in *TagResourceInput) error {
	if err := c.rpc.Invoke(ctx, "TagResource", in, nil); err != nil {
		return convertError(err)
	}
	return nil
}

func (c *Client) UntagResource(ctx context.Context, in *UntagResourceInput) error {
	if err := c.rpc.Invoke(ctx, "UntagResource", in, nil); err != nil {
		return convertError(err)
	}
	return nil
}

func (c *Client) ListTagsForResource(ctx context.Context, in *ListTagsForResourceInput) (*ListTagsForResourceOutput, error) {
	out := &ListTagsForResourceOutput{}
	if err := c.rpc.Invoke(ctx, "ListTagsForResource", in, out); err != nil {
		return nil, convertError(err)
	}
	return out, nil
}
