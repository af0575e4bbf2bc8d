package analyzer

import (
	"context"

	"github.com/Bahjat/email-insight/internal/model"
)

// ContentProvider defines the contract for any email analysis engine.
type ContentProvider interface {
	Analyze(ctx context.Context, content string) (*model.AnalysisResult, error)
}
