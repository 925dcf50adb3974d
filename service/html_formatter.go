package service

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/layerlint/layerlint/domain"
)

// HTMLFormatterImpl renders analysis results as a self-contained HTML report
// with a Lighthouse-style health score.
type HTMLFormatterImpl struct{}

// NewHTMLFormatter creates a new HTML formatter service.
func NewHTMLFormatter() *HTMLFormatterImpl {
	return &HTMLFormatterImpl{}
}

// ScoreData represents scoring information for HTML output.
type ScoreData struct {
	Score    int    `json:"score"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

// OverallScoreData represents the combined score information.
type OverallScoreData struct {
	Score       int         `json:"score"`
	Color       string      `json:"color"`
	Status      string      `json:"status"`
	Breakdown   []ScoreData `json:"breakdown"`
	ProjectName string      `json:"project_name"`
	Timestamp   string      `json:"timestamp"`
}

// AnalysisHTMLData represents dependency analysis data for the HTML template.
type AnalysisHTMLData struct {
	OverallScore OverallScoreData        `json:"overall_score"`
	Response     *domain.AnalysisResponse `json:"response"`
	ScoreDetails ScoreData                `json:"score_details"`

	Modules         int
	EdgesCount      int
	CyclesCount     int
	ViolationsCount int

	EdgesDisplay      []domain.ModuleImport
	CyclesDisplay     []domain.DependencyCycle
	ViolationsDisplay []domain.PackageDependency

	HiddenEdges      int
	HiddenCycles     int
	HiddenViolations int
}

// CalculateOverallScore computes a single combined score (0-100) from a
// weighted average of the given category scores.
func (f *HTMLFormatterImpl) CalculateOverallScore(scores []ScoreData, projectName string) OverallScoreData {
	if len(scores) == 0 {
		return OverallScoreData{
			Score:       100,
			Color:       "#0CCE6B",
			Status:      "pass",
			Breakdown:   []ScoreData{},
			ProjectName: projectName,
			Timestamp:   time.Now().Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	var weightedSum, totalWeight float64
	for _, score := range scores {
		weight := 1.0 / float64(len(scores))
		weightedSum += float64(score.Score) * weight
		totalWeight += weight
	}
	overallScore := int(weightedSum / totalWeight)

	var color, status string
	switch {
	case overallScore >= 90:
		color, status = "#0CCE6B", "pass"
	case overallScore >= 50:
		color, status = "#FFA500", "average"
	default:
		color, status = "#FF5722", "fail"
	}

	return OverallScoreData{
		Score:       overallScore,
		Color:       color,
		Status:      status,
		Breakdown:   scores,
		ProjectName: projectName,
		Timestamp:   time.Now().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// CalculateAnalysisScore derives a health score from cycle and illegal
// dependency counts: every cycle costs 12 points, every illegal dependency
// costs 6.
func (f *HTMLFormatterImpl) CalculateAnalysisScore(response *domain.AnalysisResponse) ScoreData {
	cycles := len(response.Cycles)
	violations := len(response.IllegalDependencies)

	score := 100 - cycles*12 - violations*6
	if score < 0 {
		score = 0
	}

	var color, status string
	switch {
	case score >= 90:
		color, status = "#0CCE6B", "pass"
	case score >= 50:
		color, status = "#FFA500", "average"
	default:
		color, status = "#FF5722", "fail"
	}

	label := fmt.Sprintf("Cycles: %d, Illegal Dependencies: %d", cycles, violations)
	return ScoreData{Score: score, Label: label, Color: color, Status: status, Category: "dependencies"}
}

// FormatAnalysisAsHTML renders a complete HTML report for an analysis response.
func (f *HTMLFormatterImpl) FormatAnalysisAsHTML(response *domain.AnalysisResponse, projectName string) (string, error) {
	if response == nil {
		return "", fmt.Errorf("response cannot be nil")
	}

	scoreDetails := f.CalculateAnalysisScore(response)
	overall := f.CalculateOverallScore([]ScoreData{scoreDetails}, projectName)

	const maxEdges = 200
	const maxCycles = 100
	const maxViolations = 100

	edges := response.Edges
	cycles := response.Cycles
	viols := response.IllegalDependencies

	if len(edges) > maxEdges {
		edges = edges[:maxEdges]
	}
	if len(cycles) > maxCycles {
		cycles = cycles[:maxCycles]
	}
	if len(viols) > maxViolations {
		viols = viols[:maxViolations]
	}

	data := AnalysisHTMLData{
		OverallScore:      overall,
		Response:          response,
		ScoreDetails:      scoreDetails,
		Modules:           response.Summary.Modules,
		EdgesCount:        response.Summary.Edges,
		CyclesCount:       len(response.Cycles),
		ViolationsCount:   len(response.IllegalDependencies),
		EdgesDisplay:      edges,
		CyclesDisplay:     cycles,
		ViolationsDisplay: viols,
		HiddenEdges:       len(response.Edges) - len(edges),
		HiddenCycles:      len(response.Cycles) - len(cycles),
		HiddenViolations:  len(response.IllegalDependencies) - len(viols),
	}
	return f.renderTemplateString(f.getAnalysisHTMLTemplate(), data)
}

func (f *HTMLFormatterImpl) getAnalysisHTMLTemplate() string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>layerlint Dependency Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
        }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        .header { background: white; border-radius: 10px; padding: 30px; margin-bottom: 20px; box-shadow: 0 10px 30px rgba(0,0,0,0.1); }
        .header h1 { color: #667eea; margin-bottom: 10px; }
        .score-badge { display:inline-block; padding:10px 20px; border-radius:50px; font-size:24px; font-weight:bold; margin:10px 0; }
        .metric-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin: 20px 0; }
        .metric-card { background: #f8f9fa; padding: 20px; border-radius: 8px; text-align: center; }
        .metric-value { font-size: 32px; font-weight: bold; color: #667eea; }
        .metric-label { color: #666; margin-top: 5px; }
        .section { background:white; border-radius:10px; box-shadow:0 10px 30px rgba(0,0,0,0.1); padding: 20px; margin-bottom: 20px; }
        .table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        .table th, .table td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }
        .table th { background: #f8f9fa; font-weight: 600; }
        .ok { color: #4caf50; }
        .muted { color: #666; }
    </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Dependency Analysis</h1>
      <div>Project: <strong>{{.OverallScore.ProjectName}}</strong></div>
      <div class="muted">Generated on {{.OverallScore.Timestamp}}</div>
      <span class="score-badge" style="background: {{.OverallScore.Color}}; color: white;">{{.OverallScore.Score}}</span>
      <div class="muted">{{.ScoreDetails.Label}}</div>
    </div>

    <div class="section">
      <h2>Summary</h2>
      <div class="metric-grid">
        <div class="metric-card"><div class="metric-value">{{.Modules}}</div><div class="metric-label">Modules</div></div>
        <div class="metric-card"><div class="metric-value">{{.EdgesCount}}</div><div class="metric-label">Edges</div></div>
        <div class="metric-card"><div class="metric-value">{{.CyclesCount}}</div><div class="metric-label">Cycles</div></div>
        <div class="metric-card"><div class="metric-value">{{.ViolationsCount}}</div><div class="metric-label">Illegal Dependencies</div></div>
      </div>
    </div>

    <div class="section">
      <h2>Edges</h2>
      <table class="table">
        <thead><tr><th>Importer</th><th>Imported</th></tr></thead>
        <tbody>
          {{range .EdgesDisplay}}
            <tr><td>{{.Importer}}</td><td>{{.Imported}}</td></tr>
          {{end}}
        </tbody>
      </table>
      {{if gt .HiddenEdges 0}}<div class="muted">+{{.HiddenEdges}} more edges not shown</div>{{end}}
    </div>

    <div class="section">
      <h2>Cycles</h2>
      {{if .CyclesDisplay}}
        <ol>
          {{range .CyclesDisplay}}
            <li>[{{.Severity}}] {{range $i, $m := .Modules}}{{if $i}} -&gt; {{end}}{{$m}}{{end}}</li>
          {{end}}
        </ol>
        {{if gt .HiddenCycles 0}}<div class="muted">+{{.HiddenCycles}} more cycles not shown</div>{{end}}
      {{else}}
        <div class="ok">No cycles detected</div>
      {{end}}
    </div>

    <div class="section">
      <h2>Illegal Layer Dependencies</h2>
      {{if .ViolationsDisplay}}
        <table class="table">
          <thead><tr><th>Downstream</th><th>Upstream</th><th>Routes</th></tr></thead>
          <tbody>
            {{range .ViolationsDisplay}}
              <tr>
                <td>{{.Downstream}}</td>
                <td>{{.Upstream}}</td>
                <td>
                  {{range .Routes}}
                    <div>{{range $i, $h := .Heads}}{{if $i}}, {{end}}{{$h}}{{end}} -&gt;
                    {{range .Middle}}{{.}} -&gt; {{end}}
                    {{range $i, $t := .Tails}}{{if $i}}, {{end}}{{$t}}{{end}}</div>
                  {{end}}
                </td>
              </tr>
            {{end}}
          </tbody>
        </table>
        {{if gt .HiddenViolations 0}}<div class="muted">+{{.HiddenViolations}} more illegal dependencies not shown</div>{{end}}
      {{else}}
        <div class="ok">No illegal layer dependencies</div>
      {{end}}
    </div>
  </div>
</body>
</html>`
}

// renderTemplateString renders a provided template string with shared funcMap.
func (f *HTMLFormatterImpl) renderTemplateString(tmplStr string, data interface{}) (string, error) {
	funcMap := template.FuncMap{
		"title": func(s string) string {
			if len(s) == 0 {
				return s
			}
			return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
		},
	}
	tmpl, err := template.New("html_report").Funcs(funcMap).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML template: %w", err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.String(), nil
}
