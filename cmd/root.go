package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsclient "github.com/cloudshim/awslite/internal/aws"
	"github.com/cloudshim/awslite/internal/config"
)

// session bundles what every subcommand needs after config merge.
type session struct {
	Client  *awsclient.ServiceClient
	AWSCfg  awssdk.Config
	Profile string
	Region  string
}

// newSession merges config and flags, then builds the per-service clients.
func newSession(ctx context.Context, profile, region string) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	profile, region = cfg.Merge(profile, region)

	client, awsCfg, err := awsclient.NewServiceClient(ctx, profile, region, awsclient.TransportOptions{
		EndpointOverrides: cfg.EndpointOverrides,
		MaxAttempts:       cfg.MaxAttempts,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing AWS client: %w", err)
	}
	return &session{Client: client, AWSCfg: awsCfg, Profile: profile, Region: region}, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a tab-aligned writer for list output; callers must Flush.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
