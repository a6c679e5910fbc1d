package identity

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestListIdentityPoolsPaginator(t *testing.T) {
	calls := 0
	mock := &mockRPC{
		invokeFunc: func(ctx context.Context, op string, in, out any) error {
			calls++
			params := in.(*ListIdentityPoolsInput)
			switch calls {
			case 1:
				if params.NextToken != nil {
					t.Errorf("first page NextToken = %q, want nil", *params.NextToken)
				}
				return respond(out, `{"IdentityPools":[{"IdentityPoolId":"us-east-1:a","IdentityPoolName":"one"}],"NextToken":"page2"}`)
			case 2:
				if aws.ToString(params.NextToken) != "page2" {
					t.Errorf("second page NextToken = %q, want page2", aws.ToString(params.NextToken))
				}
				return respond(out, `{"IdentityPools":[{"IdentityPoolId":"us-east-1:b","IdentityPoolName":"two"}]}`)
			}
			t.Fatalf("unexpected call %d", calls)
			return nil
		},
	}

	pools, err := AllPools(context.Background(), NewClient(mock))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools) != 2 {
		t.Fatalf("len(pools) = %d, want 2", len(pools))
	}
	if PoolName(pools[0]) != "one" || PoolName(pools[1]) != "two" {
		t.Errorf("pool names = %q, %q", PoolName(pools[0]), PoolName(pools[1]))
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestListIdentityPoolsPaginator_RepeatedTokenStops(t *testing.T) {
	calls := 0
	mock := &mockRPC{
		invokeFunc: func(ctx context.Context, op string, in, out any) error {
			calls++
			return respond(out, `{"IdentityPools":[],"NextToken":"same"}`)
		},
	}

	p := NewListIdentityPoolsPaginator(NewClient(mock), nil)
	for p.HasMorePages() {
		if _, err := p.NextPage(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls > 5 {
			t.Fatal("paginator did not stop on a repeated token")
		}
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestListIdentityPoolsPaginator_DefaultsMaxResults(t *testing.T) {
	mock := &mockRPC{
		invokeFunc: func(ctx context.Context, op string, in, out any) error {
			params := in.(*ListIdentityPoolsInput)
			if params.MaxResults != defaultPageSize {
				t.Errorf("MaxResults = %d, want %d", params.MaxResults, defaultPageSize)
			}
			return respond(out, `{"IdentityPools":[]}`)
		},
	}

	p := NewListIdentityPoolsPaginator(NewClient(mock), &ListIdentityPoolsInput{})
	if _, err := p.NextPage(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HasMorePages() {
		t.Error("HasMorePages() = true after final page")
	}
}

func TestPoolSummary_MarshalOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(PoolSummary{IdentityPoolId: aws.String("us-east-1:a")})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"IdentityPoolId":"us-east-1:a"}` {
		t.Errorf("marshal = %s", data)
	}
}
