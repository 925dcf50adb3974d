package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/layerlint/layerlint/domain"
)

// AnalysisFormatterImpl implements domain.AnalysisOutputFormatter.
type AnalysisFormatterImpl struct{}

// NewAnalysisFormatter creates a new analysis result formatter.
func NewAnalysisFormatter() *AnalysisFormatterImpl { return &AnalysisFormatterImpl{} }

func (f *AnalysisFormatterImpl) Write(resp *domain.AnalysisResponse, format domain.OutputFormat, w io.Writer) error {
	switch format {
	case domain.OutputFormatText:
		_, err := w.Write([]byte(f.formatText(resp)))
		return err
	case domain.OutputFormatJSON:
		return WriteJSON(w, resp)
	case domain.OutputFormatYAML:
		return WriteYAML(w, resp)
	case domain.OutputFormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"upstream", "downstream", "heads", "middle", "tails"}); err != nil {
			return err
		}
		for _, d := range resp.IllegalDependencies {
			for _, r := range d.Routes {
				if err := cw.Write([]string{
					d.Upstream, d.Downstream,
					strings.Join(r.Heads, "|"),
					strings.Join(r.Middle, "|"),
					strings.Join(r.Tails, "|"),
				}); err != nil {
					return err
				}
			}
		}
		cw.Flush()
		return cw.Error()
	case domain.OutputFormatHTML:
		html := NewHTMLFormatter()
		content, err := html.FormatAnalysisAsHTML(resp, "layerlint")
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(content))
		return err
	case domain.OutputFormatDOT:
		_, err := w.Write([]byte(resp.DOT))
		return err
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *AnalysisFormatterImpl) formatText(resp *domain.AnalysisResponse) string {
	fu := NewFormatUtils()

	var b strings.Builder
	b.WriteString(fu.FormatMainHeader("Dependency Analysis"))
	b.WriteString(fu.FormatLabel("Modules", resp.Summary.Modules))
	b.WriteString(fu.FormatLabel("Edges", resp.Summary.Edges))
	b.WriteString(fu.FormatLabel("Cycles", resp.Summary.Cycles))
	if resp.Summary.IllegalDependencies > 0 {
		b.WriteString(fu.FormatLabel("Illegal Dependencies", resp.Summary.IllegalDependencies))
	}
	b.WriteString(fu.FormatSectionSeparator())

	if len(resp.Cycles) > 0 {
		b.WriteString(fu.FormatSectionHeader("Cycles"))
		b.WriteString(fu.FormatLabel("Module coverage", fu.FormatPercentage(cycleModuleCoverage(resp))))
		for i, cyc := range resp.Cycles {
			risk := fu.ConvertToStandardRisk(cyc.Severity)
			fmt.Fprintf(&b, "  %d) [%s] %s\n", i+1, fu.FormatRiskWithColor(risk), strings.Join(cyc.Modules, " -> "))
		}
		b.WriteString(fu.FormatSectionSeparator())
	}

	if len(resp.IllegalDependencies) > 0 {
		b.WriteString(fu.FormatSectionHeader("Illegal Layer Dependencies"))
		b.WriteString(fu.FormatTableHeader("downstream", "upstream", "route"))
		for _, d := range resp.IllegalDependencies {
			fmt.Fprintf(&b, "  %s is not allowed to import %s:\n", d.Downstream, d.Upstream)
			for _, r := range d.Routes {
				fmt.Fprintf(&b, "    %s -> %s -> %s\n",
					strings.Join(r.Heads, ","), strings.Join(r.Middle, " -> "), strings.Join(r.Tails, ","))
			}
		}
		b.WriteString(fu.FormatSectionSeparator())
	}

	if len(resp.Errors) > 0 {
		b.WriteString(fu.FormatSectionHeader("Errors"))
		for _, e := range resp.Errors {
			b.WriteString(fu.FormatLabelWithIndent(2, "-", e))
		}
		b.WriteString(fu.FormatSectionSeparator())
	}
	b.WriteString(fu.FormatWarningsSection(resp.Warnings))
	return b.String()
}

// cycleModuleCoverage returns the share of analyzed modules that appear in
// at least one reported cycle, as a percentage of resp.Summary.Modules.
func cycleModuleCoverage(resp *domain.AnalysisResponse) float64 {
	if resp.Summary.Modules == 0 {
		return 0
	}
	inCycle := make(map[string]bool)
	for _, cyc := range resp.Cycles {
		for _, m := range cyc.Modules {
			inCycle[m] = true
		}
	}
	return float64(len(inCycle)) / float64(resp.Summary.Modules) * 100
}
