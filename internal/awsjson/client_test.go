package awsjson

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/credentials"
)

var testService = Service{
	EndpointPrefix: "cognito-identity",
	TargetPrefix:   "AWSCognitoIdentityService",
	SigningName:    "cognito-identity",
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(testService, Options{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		Endpoint:    srv.URL,
		HTTPClient:  srv.Client(),
	})
	c.delay = func(int, error) (time.Duration, error) { return 0, nil }
	return c
}

func TestInvoke_RequestShape(t *testing.T) {
	var gotTarget, gotContentType, gotAuth string
	var gotBody map[string]any

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotTarget = r.Header.Get("X-Amz-Target")
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"IdentityPoolId":"us-east-1:abc"}`))
	})

	in := map[string]string{"IdentityPoolId": "us-east-1:abc"}
	var out struct {
		IdentityPoolId string
	}
	if err := c.Invoke(context.Background(), "DescribeIdentityPool", in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotTarget != "AWSCognitoIdentityService.DescribeIdentityPool" {
		t.Errorf("X-Amz-Target = %q", gotTarget)
	}
	if gotContentType != "application/x-amz-json-1.1" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotAuth == "" {
		t.Error("request was not signed")
	}
	if gotBody["IdentityPoolId"] != "us-east-1:abc" {
		t.Errorf("body = %v", gotBody)
	}
	if out.IdentityPoolId != "us-east-1:abc" {
		t.Errorf("IdentityPoolId = %q", out.IdentityPoolId)
	}
}

func TestInvoke_NilInputSendsEmptyObject(t *testing.T) {
	var body string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		b := make([]byte, 2)
		r.Body.Read(b)
		body = string(b)
		w.Write([]byte(`{}`))
	})

	if err := c.Invoke(context.Background(), "ListIdentityPools", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "{}" {
		t.Errorf("body = %q, want {}", body)
	}
}

func TestInvoke_TypedNilInputSendsEmptyObject(t *testing.T) {
	var body string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		b := make([]byte, 4)
		n, _ := r.Body.Read(b)
		body = string(b[:n])
		w.Write([]byte(`{}`))
	})

	// A nil params pointer arrives as a non-nil interface; it must still
	// serialize as {}, not null.
	type describeInput struct {
		EndpointName *string `json:"EndpointName,omitempty"`
	}
	var in *describeInput
	if err := c.Invoke(context.Background(), "DescribeEndpoint", in, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "{}" {
		t.Errorf("body = %q, want {}", body)
	}
}

func TestInvoke_ErrorFromHeader(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Amzn-Errortype", "ResourceNotFoundException:http://internal.amazon.com/coral/")
		w.Header().Set("X-Amzn-Requestid", "req-123")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"pool not found"}`))
	})

	err := c.Invoke(context.Background(), "DescribeIdentityPool", nil, nil)
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if ae.Code != "ResourceNotFoundException" {
		t.Errorf("Code = %q", ae.Code)
	}
	if ae.Message != "pool not found" {
		t.Errorf("Message = %q", ae.Message)
	}
	if ae.RequestID != "req-123" {
		t.Errorf("RequestID = %q", ae.RequestID)
	}
	if ae.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", ae.StatusCode)
	}
}

func TestInvoke_ErrorFromBodyType(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"__type":"com.amazonaws.sagemaker#ResourceInUse","Message":"endpoint busy"}`))
	})

	err := c.Invoke(context.Background(), "DeleteEndpoint", nil, nil)
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if ae.Code != "ResourceInUse" {
		t.Errorf("Code = %q", ae.Code)
	}
	if ae.Message != "endpoint busy" {
		t.Errorf("Message = %q", ae.Message)
	}
}

func TestInvoke_NonJSONErrorBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	})

	err := c.Invoke(context.Background(), "ListTrainingJobs", nil, nil)
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if ae.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d", ae.StatusCode)
	}
	if ae.Code != http.StatusText(http.StatusBadGateway) {
		t.Errorf("Code = %q", ae.Code)
	}
}

func TestInvoke_RetriesServerFaults(t *testing.T) {
	attempts := 0
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"__type":"InternalErrorException"}`))
			return
		}
		w.Write([]byte(`{}`))
	})

	if err := c.Invoke(context.Background(), "GetId", nil, nil); err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestInvoke_NoRetryOnClientFault(t *testing.T) {
	attempts := 0
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"__type":"InvalidParameterException"}`))
	})

	err := c.Invoke(context.Background(), "GetId", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestInvoke_RetriesThrottling(t *testing.T) {
	attempts := 0
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"__type":"TooManyRequestsException"}`))
			return
		}
		w.Write([]byte(`{}`))
	})

	if err := c.Invoke(context.Background(), "ListIdentityPools", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestSanitizeErrorCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ResourceNotFoundException", "ResourceNotFoundException"},
		{"ResourceNotFoundException:http://internal.amazon.com/coral/", "ResourceNotFoundException"},
		{"com.amazonaws.cognitoidentity#NotAuthorizedException", "NotAuthorizedException"},
		{"ns#Code:uri", "Code"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sanitizeErrorCode(tt.input); got != tt.want {
				t.Errorf("sanitizeErrorCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEndpoint_Default(t *testing.T) {
	c := New(testService, Options{
		Region:      "eu-west-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
	})
	want := "https://cognito-identity.eu-west-1.amazonaws.com"
	if got := c.Endpoint(); got != want {
		t.Errorf("Endpoint() = %q, want %q", got, want)
	}
}
