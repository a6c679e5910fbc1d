package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DetailBuilder builds formatted key-value detail views for TUI viewports.
type DetailBuilder struct {
	b            strings.Builder
	labelStyle   lipgloss.Style
	sectionStyle lipgloss.Style
}

// NewDetailBuilder creates a builder with a fixed-width label column.
// sectionStyle controls the rendering of section headings.
func NewDetailBuilder(labelWidth int, sectionStyle lipgloss.Style) *DetailBuilder {
	return &DetailBuilder{
		labelStyle:   sectionStyle.Width(labelWidth),
		sectionStyle: sectionStyle,
	}
}

// Row writes a labeled key-value row.
func (d *DetailBuilder) Row(label, value string) {
	fmt.Fprintf(&d.b, "  %s %s\n", d.labelStyle.Render(label), value)
}

// RowOpt writes a row only when value is set. Useful for optional
// response fields like failure reasons.
func (d *DetailBuilder) RowOpt(label string, value *string) {
	if value == nil || *value == "" {
		return
	}
	d.Row(label, *value)
}

// SortedMap writes one row per map entry in key order.
func (d *DetailBuilder) SortedMap(m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.Row(k, m[k])
	}
}

// Section writes a section heading like "── title ──────...".
func (d *DetailBuilder) Section(title string) {
	pad := max(40-len(title), 4)
	heading := fmt.Sprintf("  ── %s %s", title, strings.Repeat("─", pad))
	d.b.WriteString(d.sectionStyle.Render(heading) + "\n")
}

// Blank writes an empty line.
func (d *DetailBuilder) Blank() {
	d.b.WriteString("\n")
}

// WriteString appends arbitrary text (for custom formatting not covered by Row/Section).
func (d *DetailBuilder) WriteString(s string) {
	d.b.WriteString(s)
}

// String returns the accumulated content.
func (d *DetailBuilder) String() string {
	return d.b.String()
}
