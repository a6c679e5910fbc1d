// Package awsjson implements the AWS JSON-RPC 1.1 protocol: POST to "/",
// content-type application/x-amz-json-1.1, an X-Amz-Target header naming the
// operation, JSON request/response bodies, and an error envelope resolved
// from a wire error code. Service clients share one Client per service.
package awsjson

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	smithytime "github.com/aws/smithy-go/time"
)

const contentType = "application/x-amz-json-1.1"

const defaultMaxAttempts = 3

// Service identifies one AWS JSON 1.1 service endpoint.
type Service struct {
	// EndpointPrefix is the leading DNS label, e.g. "cognito-identity"
	// or "api.sagemaker".
	EndpointPrefix string
	// TargetPrefix prefixes every X-Amz-Target value, e.g. "SageMaker".
	TargetPrefix string
	// SigningName is the SigV4 service name.
	SigningName string
}

// Options configures a Client.
type Options struct {
	Region      string
	Credentials aws.CredentialsProvider
	HTTPClient  *http.Client

	// Endpoint overrides the default https://<prefix>.<region>.amazonaws.com
	// URL. Useful for LocalStack-style local endpoints.
	Endpoint string

	MaxAttempts int
	UserAgent   string
}

// Client invokes JSON 1.1 operations against a single service.
type Client struct {
	svc     Service
	opts    Options
	signer  *v4.Signer
	retryer aws.Retryer

	// delay computes the backoff before a retry attempt; injectable for
	// testing. Defaults to the standard retryer's exponential jitter.
	delay func(attempt int, opErr error) (time.Duration, error)
}

// New creates a Client for the given service.
func New(svc Service, opts Options) *Client {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "awslite"
	}

	retryer := retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = opts.MaxAttempts
	})

	return &Client{
		svc:     svc,
		opts:    opts,
		signer:  v4.NewSigner(),
		retryer: retryer,
		delay:   retryer.RetryDelay,
	}
}

// Endpoint returns the resolved service endpoint URL.
func (c *Client) Endpoint() string {
	if c.opts.Endpoint != "" {
		return c.opts.Endpoint
	}
	return fmt.Sprintf("https://%s.%s.amazonaws.com", c.svc.EndpointPrefix, c.opts.Region)
}

// Invoke calls one operation: marshals in, signs and posts the request, and
// unmarshals the response into out. On a non-2xx response it returns an
// *APIError carrying the wire error code. Transient failures are retried
// with exponential backoff up to MaxAttempts.
func (c *Client) Invoke(ctx context.Context, op string, in, out any) error {
	payload := []byte("{}")
	if !isNilParams(in) {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshaling request: %w", op, err)
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.opts.MaxAttempts; attempt++ {
		err := c.attempt(ctx, op, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == c.opts.MaxAttempts || !c.shouldRetry(err) {
			break
		}
		d, derr := c.delay(attempt, err)
		if derr != nil {
			break
		}
		if serr := smithytime.SleepWithContext(ctx, d); serr != nil {
			return fmt.Errorf("%s: %w", op, serr)
		}
	}
	return fmt.Errorf("%s: %w", op, lastErr)
}

// isNilParams catches both an untyped nil and a typed-nil params pointer;
// the latter is a non-nil interface that json.Marshal would turn into
// "null", and the protocol wants "{}" for an empty request.
func isNilParams(in any) bool {
	if in == nil {
		return true
	}
	v := reflect.ValueOf(in)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func (c *Client) attempt(ctx context.Context, op string, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint()+"/", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Amz-Target", c.svc.TargetPrefix+"."+op)
	req.Header.Set("User-Agent", c.opts.UserAgent)

	creds, err := c.opts.Credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("retrieving credentials: %w", err)
	}

	sum := sha256.Sum256(payload)
	hash := hex.EncodeToString(sum[:])
	if err := c.signer.SignHTTP(ctx, creds, req, hash, c.svc.SigningName, c.opts.Region, time.Now().UTC()); err != nil {
		return fmt.Errorf("signing request: %w", err)
	}

	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transportError{err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshaling response: %w", err)
	}
	return nil
}

// shouldRetry reports whether an attempt error is worth retrying: connection
// failures, throttling, and server faults. The standard retryer covers the
// SDK's transient code set; the explicit checks cover our own error types.
func (c *Client) shouldRetry(err error) bool {
	if c.retryer.IsErrorRetryable(err) {
		return true
	}
	var te *transportError
	if errors.As(err, &te) {
		return true
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Retryable()
	}
	return false
}
