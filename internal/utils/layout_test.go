package utils

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDetailBuilder_Row(t *testing.T) {
	style := lipgloss.NewStyle()
	db := NewDetailBuilder(16, style)
	db.Row("Name", "resnet-run-42")

	got := db.String()
	if !strings.Contains(got, "Name") {
		t.Error("Row should contain label")
	}
	if !strings.Contains(got, "resnet-run-42") {
		t.Error("Row should contain value")
	}
}

func TestDetailBuilder_Section(t *testing.T) {
	style := lipgloss.NewStyle()
	db := NewDetailBuilder(16, style)
	db.Section("Hyperparameters")

	got := db.String()
	if !strings.Contains(got, "── Hyperparameters") {
		t.Error("Section should contain heading")
	}
	if !strings.Contains(got, "───") {
		t.Error("Section should contain padding dashes")
	}
}

func TestDetailBuilder_Blank(t *testing.T) {
	style := lipgloss.NewStyle()
	db := NewDetailBuilder(16, style)
	db.Row("A", "1")
	db.Blank()
	db.Row("B", "2")

	got := db.String()
	if !strings.Contains(got, "\n\n") {
		t.Error("Blank should insert empty line")
	}
}

func TestDetailBuilder_RowOpt(t *testing.T) {
	style := lipgloss.NewStyle()
	db := NewDetailBuilder(16, style)
	reason := "AlgorithmError: loss is NaN"
	empty := ""
	db.RowOpt("Failure reason", &reason)
	db.RowOpt("Secondary status", nil)
	db.RowOpt("Developer provider", &empty)

	got := db.String()
	if !strings.Contains(got, "loss is NaN") {
		t.Error("RowOpt should render a set value")
	}
	if strings.Contains(got, "Secondary status") {
		t.Error("RowOpt should skip nil values")
	}
	if strings.Contains(got, "Developer provider") {
		t.Error("RowOpt should skip empty values")
	}
}

func TestDetailBuilder_SortedMap(t *testing.T) {
	style := lipgloss.NewStyle()
	db := NewDetailBuilder(16, style)
	db.SortedMap(map[string]string{
		"learning_rate": "0.001",
		"batch_size":    "64",
		"epochs":        "10",
	})

	got := db.String()
	batch := strings.Index(got, "batch_size")
	epochs := strings.Index(got, "epochs")
	rate := strings.Index(got, "learning_rate")
	if batch < 0 || epochs < 0 || rate < 0 {
		t.Fatalf("missing entries in output: %q", got)
	}
	if !(batch < epochs && epochs < rate) {
		t.Error("entries should be in key order")
	}
}

func TestDetailBuilder_Combined(t *testing.T) {
	style := lipgloss.NewStyle()
	db := NewDetailBuilder(16, style)
	db.Section("Info")
	db.Row("Name", "test")
	db.Blank()
	db.Section("Details")
	db.Row("Status", "active")

	got := db.String()
	if !strings.Contains(got, "Info") {
		t.Error("should contain first section")
	}
	if !strings.Contains(got, "Details") {
		t.Error("should contain second section")
	}
	if !strings.Contains(got, "test") {
		t.Error("should contain first value")
	}
	if !strings.Contains(got, "active") {
		t.Error("should contain second value")
	}
}
