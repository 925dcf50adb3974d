package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/layerlint/layerlint/domain"
)

type mockDepService struct {
	resp *domain.AnalysisResponse
	err  error
}

func (m *mockDepService) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	return m.resp, m.err
}

type mockFormatter struct {
	called     bool
	lastFormat domain.OutputFormat
}

func (m *mockFormatter) Write(resp *domain.AnalysisResponse, format domain.OutputFormat, w io.Writer) error {
	m.called = true
	m.lastFormat = format
	if w != nil {
		_, _ = w.Write([]byte("ok"))
	}
	return nil
}

type mockReportWriter struct {
	called     bool
	lastPath   string
	lastFormat domain.OutputFormat
	err        error
}

func (mw *mockReportWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error {
	mw.called = true
	mw.lastPath = outputPath
	mw.lastFormat = format
	var buf bytes.Buffer
	if err := writeFunc(&buf); err != nil {
		return err
	}
	if mw.err != nil {
		return mw.err
	}
	return nil
}

func TestAnalyzeUseCase_Execute_Success(t *testing.T) {
	svc := &mockDepService{resp: &domain.AnalysisResponse{Summary: domain.AnalysisSummary{Modules: 1}}}
	fmtr := &mockFormatter{}
	out := &mockReportWriter{}

	uc, err := NewAnalyzeUseCaseBuilder().
		WithService(svc).
		WithFormatter(fmtr).
		WithOutputWriter(out).
		Build()
	if err != nil {
		t.Fatalf("build usecase: %v", err)
	}

	req := domain.AnalysisRequest{GraphPath: "graph.json", OutputWriter: &bytes.Buffer{}, OutputFormat: domain.OutputFormatText}
	if _, err := uc.Execute(context.Background(), req); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !out.called || !fmtr.called {
		t.Fatalf("expected formatter and report writer to be called")
	}
}

func TestAnalyzeUseCase_Execute_InvalidRequest_NoGraph(t *testing.T) {
	uc := NewAnalyzeUseCase(&mockDepService{}, &mockFormatter{})
	_, err := uc.Execute(context.Background(), domain.AnalysisRequest{OutputWriter: &bytes.Buffer{}, OutputFormat: domain.OutputFormatText})
	if err == nil {
		t.Fatalf("expected error for missing graph descriptor")
	}
}

func TestAnalyzeUseCase_Execute_AnalysisError(t *testing.T) {
	svc := &mockDepService{err: errors.New("analyze failed")}
	uc := NewAnalyzeUseCase(svc, &mockFormatter{})
	_, err := uc.Execute(context.Background(), domain.AnalysisRequest{GraphPath: "graph.json", OutputWriter: &bytes.Buffer{}, OutputFormat: domain.OutputFormatText})
	if err == nil {
		t.Fatalf("expected analysis error")
	}
}

func TestAnalyzeUseCase_Execute_ReportWriterError(t *testing.T) {
	svc := &mockDepService{resp: &domain.AnalysisResponse{Summary: domain.AnalysisSummary{}}}
	fmtr := &mockFormatter{}
	out := &mockReportWriter{err: errors.New("write failed")}
	uc, err := NewAnalyzeUseCaseBuilder().WithService(svc).WithFormatter(fmtr).WithOutputWriter(out).Build()
	if err != nil {
		t.Fatalf("build usecase: %v", err)
	}
	if _, err := uc.Execute(context.Background(), domain.AnalysisRequest{GraphPath: "graph.json", OutputWriter: &bytes.Buffer{}, OutputFormat: domain.OutputFormatText}); err == nil {
		t.Fatalf("expected write error")
	}
}
