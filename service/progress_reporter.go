package service

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// progressReporter renders a progress bar for a unit of work measured in
// discrete steps (here, layer contracts checked). It is silent whenever
// IsInteractiveEnvironment reports a non-interactive environment (CI, SSH,
// or stderr not a terminal), whatever writer it was given.
type progressReporter struct {
	bar *progressbar.ProgressBar
}

// newProgressReporter creates a reporter for total steps of work, writing
// to writer. It renders nothing if total is non-positive or the
// environment is non-interactive.
func newProgressReporter(writer io.Writer, total int, description string) *progressReporter {
	if total <= 0 || !IsInteractiveEnvironment() {
		return &progressReporter{}
	}
	return &progressReporter{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetWriter(writer),
			progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(writer, "\n") }),
		),
	}
}

// Add advances the bar by n steps; a no-op on a silent reporter.
func (p *progressReporter) Add(n int) {
	if p.bar != nil {
		_ = p.bar.Add(n)
	}
}

// Finish completes the bar; a no-op on a silent reporter.
func (p *progressReporter) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
