package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/layerlint/layerlint/domain"
	"gopkg.in/yaml.v3"
)

// EncodeJSON returns an indented JSON string for the given value.
func EncodeJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to marshal JSON", err)
	}
	return string(data), nil
}

// WriteJSON writes indented JSON for the given value to the writer.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

// EncodeYAML returns a YAML string for the given value.
func EncodeYAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", domain.NewOutputError("failed to marshal YAML", err)
	}
	return string(data), nil
}

// WriteYAML writes YAML for the given value to the writer.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}

// Standard formatting constants shared by the text report.
const (
	HeaderWidth = 40
	LabelWidth  = 25
)

// ANSI color codes used to highlight cycle severity in the text report.
const (
	ColorReset  = "\x1b[0m"
	ColorRed    = "\x1b[31m"
	ColorYellow = "\x1b[33m"
	ColorGreen  = "\x1b[32m"
)

// RiskLevel is the three-tier severity scale the text report colors cycles
// by, after folding analyzer.CycleSeverity's four tiers down to it (see
// ConvertToStandardRisk).
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// FormatUtils provides shared text-report formatting utilities.
type FormatUtils struct{}

// NewFormatUtils creates a new format utilities instance.
func NewFormatUtils() *FormatUtils {
	return &FormatUtils{}
}

// FormatMainHeader creates a standardized main header.
func (f *FormatUtils) FormatMainHeader(title string) string {
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", HeaderWidth) + "\n\n")
	return b.String()
}

// FormatSectionHeader creates a standardized section header.
func (f *FormatUtils) FormatSectionHeader(title string) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(title) + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
	return b.String()
}

// FormatSectionSeparator creates a section separator.
func (f *FormatUtils) FormatSectionSeparator() string {
	return "\n"
}

// FormatLabel creates a consistently formatted label with right alignment.
func (f *FormatUtils) FormatLabel(label string, value interface{}) string {
	padding := LabelWidth - len(label)
	if padding < 0 {
		padding = 0
	}
	return fmt.Sprintf("%s%s: %v\n", strings.Repeat(" ", padding), label, value)
}

// FormatLabelWithIndent creates a formatted label with specific indentation.
func (f *FormatUtils) FormatLabelWithIndent(indent int, label string, value interface{}) string {
	return fmt.Sprintf("%s%s: %v\n", strings.Repeat(" ", indent), label, value)
}

// FormatPercentage formats a percentage value consistently.
func (f *FormatUtils) FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// GetRiskColor returns the appropriate color for a risk level.
func (f *FormatUtils) GetRiskColor(risk RiskLevel) string {
	switch risk {
	case RiskHigh:
		return ColorRed
	case RiskMedium:
		return ColorYellow
	case RiskLow:
		return ColorGreen
	default:
		return ColorReset
	}
}

// FormatRiskWithColor formats a risk level with appropriate color.
func (f *FormatUtils) FormatRiskWithColor(risk RiskLevel) string {
	return fmt.Sprintf("%s%s%s", f.GetRiskColor(risk), string(risk), ColorReset)
}

// FormatTableHeader creates a table header with consistent formatting.
func (f *FormatUtils) FormatTableHeader(columns ...string) string {
	header := strings.Join(columns, "  ")
	return header + "\n" + strings.Repeat("-", len(header)) + "\n"
}

// FormatWarningsSection creates a standardized warnings section.
func (f *FormatUtils) FormatWarningsSection(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(f.FormatSectionHeader("WARNINGS"))
	for _, warning := range warnings {
		b.WriteString(f.FormatLabelWithIndent(2, "-", warning))
	}
	b.WriteString(f.FormatSectionSeparator())
	return b.String()
}

// ConvertToStandardRisk folds a cycle severity string down to the three-tier
// RiskLevel scale used for coloring the text report.
func (f *FormatUtils) ConvertToStandardRisk(severity string) RiskLevel {
	switch strings.ToLower(severity) {
	case "critical", "high":
		return RiskHigh
	case "medium":
		return RiskMedium
	default:
		return RiskLow
	}
}
