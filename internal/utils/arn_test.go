package utils

import "testing"

func TestShortName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"arn:aws:sagemaker:us-east-1:123456:training-job/resnet-run-42", "resnet-run-42"},
		{"arn:aws:sagemaker:us-east-1:123456:endpoint/resnet", "resnet"},
		{"plain-string", "plain-string"},
		{"single/segment", "segment"},
		{"", ""},
	}

	for _, tt := range tests {
		got := ShortName(tt.input)
		if got != tt.want {
			t.Errorf("ShortName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAccountID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"arn:aws:sagemaker:us-east-1:123456789012:training-job/x", "123456789012"},
		{"arn:aws:cognito-identity:us-east-1:123456789012:identitypool/us-east-1:abc", "123456789012"},
		{"not-an-arn", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := AccountID(tt.input)
		if got != tt.want {
			t.Errorf("AccountID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
