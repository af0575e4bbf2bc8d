package emailinsight

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Bahjat/email-insight/internal/model"
	"github.com/Bahjat/email-insight/internal/platform/errs"
)

const tracerName = "github.com/Bahjat/email-insight/internal/emailinsight"

// Engine extracts and classifies the links and text of an email body.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	tracer trace.Tracer
}

// NewEngine returns an Engine that reports spans to the global tracer provider.
func NewEngine() *Engine {
	return &Engine{tracer: otel.Tracer(tracerName)}
}

// Analyze parses the HTML content and assembles the full analysis.
// Either every field of the result is populated or an *errs.AppError is
// returned; partial results are never produced.
func (e *Engine) Analyze(ctx context.Context, content string) (*model.AnalysisResult, error) {
	if content == "" {
		return nil, &errs.AppError{
			Kind:    errs.Validation,
			Message: "email content is empty",
		}
	}

	_, span := e.tracer.Start(ctx, "emailinsight.Analyze",
		trace.WithAttributes(attribute.Int("email.content_bytes", len(content))),
	)
	defer span.End()

	parsed, err := Parse(strings.NewReader(content))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, &errs.AppError{
			Kind:    errs.Internal,
			Message: "failed to parse the HTML content",
			Cause:   err,
		}
	}

	result := &model.AnalysisResult{
		Links:              make([]model.Link, 0, len(parsed.Anchors)),
		TextLength:         utf8.RuneCountInString(parsed.Text),
		HasTutorialContent: DetectTutorialContent(parsed.Text),
		VendorLinks:        []model.Link{},
		TutorialLinks:      []model.Link{},
	}

	for _, a := range parsed.Anchors {
		link := model.Link{
			URL:  a.Href,
			Text: a.Text,
			Type: CategorizeLink(a.Href),
		}
		result.Links = append(result.Links, link)

		switch link.Type {
		case model.CategoryTutorial:
			result.TutorialLinks = append(result.TutorialLinks, link)
		case model.CategoryVendor:
			result.VendorLinks = append(result.VendorLinks, link)
		case model.CategoryGeneral:
			// listed in Links only
		}
	}
	result.LinkCount = len(result.Links)

	span.SetAttributes(
		attribute.Int("email.link_count", result.LinkCount),
		attribute.Int("email.text_length", result.TextLength),
		attribute.Bool("email.has_tutorial_content", result.HasTutorialContent),
	)
	return result, nil
}
