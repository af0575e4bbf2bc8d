package analyzer

import (
	"context"
	"log/slog"

	"github.com/Bahjat/email-insight/internal/model"
	"github.com/Bahjat/email-insight/internal/platform/errs"
	"github.com/Bahjat/email-insight/internal/platform/requestid"
)

// Recorder receives the outcome of every analysis.
type Recorder interface {
	ObserveAnalysis(result *model.AnalysisResult, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAnalysis(*model.AnalysisResult, error) {}

// Service orchestrates a ContentProvider, logs results and records metrics.
type Service struct {
	provider ContentProvider
	logger   *slog.Logger
	recorder Recorder
}

// NewService creates a Service backed by the given provider. A nil recorder
// disables metrics.
func NewService(provider ContentProvider, logger *slog.Logger, recorder Recorder) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{provider: provider, logger: logger, recorder: recorder}
}

// Analyze delegates to the provider and logs the outcome. Failure causes
// are logged here and never reach the caller's response.
func (s *Service) Analyze(ctx context.Context, content string) (*model.AnalysisResult, error) {
	logger := s.logger.With("request_id", requestid.FromContext(ctx), "content_bytes", len(content))
	logger.Info("email analysis requested")

	result, err := s.provider.Analyze(ctx, content)
	s.recorder.ObserveAnalysis(result, err)
	if err != nil {
		kind := errs.KindOf(err)
		if kind == errs.Validation {
			logger.Warn("email analysis rejected", "error", err)
		} else {
			logger.Error("email analysis failed", "error", err, "kind", kind.String())
		}
		return nil, err
	}

	logger.Info("email analysis complete",
		"link_count", result.LinkCount,
		"tutorial_links", len(result.TutorialLinks),
		"vendor_links", len(result.VendorLinks),
		"text_length", result.TextLength,
		"has_tutorial_content", result.HasTutorialContent,
	)
	return result, nil
}
