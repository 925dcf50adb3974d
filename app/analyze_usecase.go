package app

import (
	"context"
	"fmt"
	"io"

	"github.com/layerlint/layerlint/domain"
	svc "github.com/layerlint/layerlint/service"
)

// AnalyzeUseCase orchestrates the dependency analysis workflow: load a graph
// descriptor, run the analysis, and write formatted output.
type AnalyzeUseCase struct {
	service   domain.DependencyService
	formatter domain.AnalysisOutputFormatter
	output    domain.ReportWriter
}

// NewAnalyzeUseCase creates a new analysis use case.
func NewAnalyzeUseCase(service domain.DependencyService, formatter domain.AnalysisOutputFormatter) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		service:   service,
		formatter: formatter,
		output:    svc.NewFileOutputWriter(nil),
	}
}

// Execute performs dependency analysis and writes formatted output.
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, domain.NewAnalysisError("dependency analysis failed", err)
	}

	var out io.Writer
	if req.OutputPath == "" {
		out = req.OutputWriter
	}
	if err := uc.output.Write(out, req.OutputPath, req.OutputFormat, req.NoOpen, func(w io.Writer) error {
		return uc.formatter.Write(response, req.OutputFormat, w)
	}); err != nil {
		return nil, domain.NewOutputError("failed to write output", err)
	}
	return response, nil
}

func (uc *AnalyzeUseCase) validateRequest(req domain.AnalysisRequest) error {
	if req.GraphPath == "" && req.Graph == nil {
		return fmt.Errorf("no graph descriptor provided")
	}
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return nil
}

// AnalyzeUseCaseBuilder provides a fluent builder for AnalyzeUseCase.
type AnalyzeUseCaseBuilder struct {
	service   domain.DependencyService
	formatter domain.AnalysisOutputFormatter
	output    domain.ReportWriter
}

func NewAnalyzeUseCaseBuilder() *AnalyzeUseCaseBuilder { return &AnalyzeUseCaseBuilder{} }

func (b *AnalyzeUseCaseBuilder) WithService(s domain.DependencyService) *AnalyzeUseCaseBuilder {
	b.service = s
	return b
}

func (b *AnalyzeUseCaseBuilder) WithFormatter(f domain.AnalysisOutputFormatter) *AnalyzeUseCaseBuilder {
	b.formatter = f
	return b
}

func (b *AnalyzeUseCaseBuilder) WithOutputWriter(w domain.ReportWriter) *AnalyzeUseCaseBuilder {
	b.output = w
	return b
}

func (b *AnalyzeUseCaseBuilder) Build() (*AnalyzeUseCase, error) {
	if b.service == nil || b.formatter == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}
	uc := &AnalyzeUseCase{
		service:   b.service,
		formatter: b.formatter,
		output:    b.output,
	}
	if uc.output == nil {
		uc.output = svc.NewFileOutputWriter(nil)
	}
	return uc, nil
}
