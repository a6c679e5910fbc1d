package aws

import (
	"context"
	"fmt"
	"net/http"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/cloudshim/awslite/internal/awsjson"
	"github.com/cloudshim/awslite/internal/identity"
	"github.com/cloudshim/awslite/internal/sagemaker"
)

// ServiceClient bundles the per-service clients behind one AWS config.
type ServiceClient struct {
	Identity  *identity.Client
	SageMaker *sagemaker.Client
}

// TransportOptions tune the shared JSON 1.1 transports.
type TransportOptions struct {
	// EndpointOverrides maps a service endpoint prefix (e.g.
	// "cognito-identity") to a replacement base URL.
	EndpointOverrides map[string]string
	MaxAttempts       int
	HTTPClient        *http.Client
}

// NewServiceClient loads AWS config and builds one transport per service.
// The loaded config is returned for callers that need more than the clients
// (account lookup, region display).
func NewServiceClient(ctx context.Context, profile, region string, topts TransportOptions) (*ServiceClient, awssdk.Config, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, awssdk.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	return NewServiceClientFromConfig(cfg, topts), cfg, nil
}

// NewServiceClientFromConfig builds clients from an already-loaded config.
func NewServiceClientFromConfig(cfg awssdk.Config, topts TransportOptions) *ServiceClient {
	return &ServiceClient{
		Identity:  identity.NewClient(newTransport(cfg, identity.Metadata, topts)),
		SageMaker: sagemaker.NewClient(newTransport(cfg, sagemaker.Metadata, topts)),
	}
}

func newTransport(cfg awssdk.Config, svc awsjson.Service, topts TransportOptions) *awsjson.Client {
	return awsjson.New(svc, awsjson.Options{
		Region:      cfg.Region,
		Credentials: cfg.Credentials,
		HTTPClient:  topts.HTTPClient,
		Endpoint:    topts.EndpointOverrides[svc.EndpointPrefix],
		MaxAttempts: topts.MaxAttempts,
		UserAgent:   "awslite",
	})
}
