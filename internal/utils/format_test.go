package utils

import (
	"testing"
	"time"
)

func TestTimeOrDash(t *testing.T) {
	tests := []struct {
		name   string
		input  time.Time
		layout string
		want   string
	}{
		{"zero time", time.Time{}, DateTime, "—"},
		{"date only", time.Date(2025, 8, 10, 12, 30, 0, 0, time.UTC), DateOnly, "2025-08-10"},
		{"date time", time.Date(2025, 8, 10, 12, 30, 0, 0, time.UTC), DateTime, "2025-08-10 12:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeOrDash(tt.input, tt.layout)
			if got != tt.want {
				t.Errorf("TimeOrDash() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{45 * time.Second, "45s"},
		{12 * time.Minute, "12m"},
		{3*time.Hour + 5*time.Minute, "3h05m"},
		{52 * time.Hour, "2d4h"},
	}

	for _, tt := range tests {
		got := Duration(tt.input)
		if got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestElapsedBetween(t *testing.T) {
	now := time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-30 * time.Minute)
	end := now.Add(-10 * time.Minute)

	if got := ElapsedBetween(start, end, now); got != 20*time.Minute {
		t.Errorf("finished job elapsed = %v, want 20m", got)
	}
	if got := ElapsedBetween(start, time.Time{}, now); got != 30*time.Minute {
		t.Errorf("running job elapsed = %v, want 30m", got)
	}
	if got := ElapsedBetween(time.Time{}, end, now); got != 0 {
		t.Errorf("zero start elapsed = %v, want 0", got)
	}
}
