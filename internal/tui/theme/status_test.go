package theme

import "testing"

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   any
	}{
		{"Completed", Success},
		{"InService", Success},
		{"Failed", Error},
		{"Stopped", Error},
		{"InProgress", Warning},
		{"Creating", Warning},
		{"Deleting", Warning},
		{"SomethingNew", Muted},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := StatusColor(tt.status); got != tt.want {
				t.Errorf("StatusColor(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestRenderStatus_ContainsStatusText(t *testing.T) {
	got := RenderStatus("InProgress")
	if len(got) == 0 || got[len(got)-len("InProgress"):] != "InProgress" {
		t.Errorf("RenderStatus should end with the status text, got %q", got)
	}
}
