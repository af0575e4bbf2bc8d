package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bahjat/email-insight/internal/model"
	"github.com/Bahjat/email-insight/internal/platform/errs"
)

func TestObserveAnalysis_Success(t *testing.T) {
	m := New()
	result := &model.AnalysisResult{
		Links: []model.Link{
			{URL: "https://x.com/docs", Type: model.CategoryTutorial},
			{URL: "https://x.com/shop", Type: model.CategoryVendor},
			{URL: "https://x.com/learn", Type: model.CategoryTutorial},
		},
		TextLength: 120,
	}

	m.ObserveAnalysis(result, nil)

	assert.InDelta(t, 1, testutil.ToFloat64(m.analyses.WithLabelValues("success")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.links.WithLabelValues("tutorial")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.links.WithLabelValues("vendor")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.links.WithLabelValues("general")), 0)
}

func TestObserveAnalysis_Failures(t *testing.T) {
	m := New()

	m.ObserveAnalysis(nil, &errs.AppError{Kind: errs.Validation, Message: "empty"})
	m.ObserveAnalysis(nil, &errs.AppError{Kind: errs.Internal, Message: "parse"})
	m.ObserveAnalysis(nil, errors.New("other"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.analyses.WithLabelValues("validation")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.analyses.WithLabelValues("internal")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.analyses.WithLabelValues("unknown")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.analyses.WithLabelValues("success")), 0)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", Outcome(nil))
	assert.Equal(t, "validation", Outcome(&errs.AppError{Kind: errs.Validation}))
	assert.Equal(t, "unknown", Outcome(errors.New("x")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "POST /analyze", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `email_insight_http_requests_total{method="POST",route="POST /analyze",status="200"} 1`)
	assert.Contains(t, string(body), "email_insight_http_request_duration_seconds_bucket")
	assert.Contains(t, string(body), "go_goroutines")
}
