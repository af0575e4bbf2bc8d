package analyzer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Bahjat/email-insight/internal/model"
	"github.com/Bahjat/email-insight/internal/platform/errs"
)

// Fixed client-facing messages. Failure details only go to the log.
const (
	MsgContentRequired = "Email content is required"
	MsgInternal        = "Internal server error"
)

// DefaultMaxBodyBytes caps the request body when no explicit limit is set.
const DefaultMaxBodyBytes = 5 << 20 // 5 MB

var (
	errContentRequired = errors.New("the \"content\" field is required")
	errTrailingData    = errors.New("unexpected data after the JSON body")
)

// Transport handles HTTP requests for email analysis.
type Transport struct {
	service      *Service
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewTransport creates an HTTP transport backed by the given service.
// A non-positive maxBodyBytes selects DefaultMaxBodyBytes.
func NewTransport(service *Service, logger *slog.Logger, maxBodyBytes int64) *Transport {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Transport{service: service, logger: logger, maxBodyBytes: maxBodyBytes}
}

// RegisterRoutes attaches the transport's handlers to the given mux.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /analyze", t.handleAnalyze)
	mux.HandleFunc("GET /healthz", t.handleHealth)
}

// analyzeRequest is the decoded body. Content is nil when the "content" key
// is absent or null.
type analyzeRequest struct {
	Content *string
}

// decodeAnalyzeRequest reads exactly one JSON object from body. Keys are
// matched exactly, unlike encoding/json struct decoding which folds case.
func decodeAnalyzeRequest(body io.Reader) (analyzeRequest, error) {
	dec := json.NewDecoder(body)

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return analyzeRequest{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return analyzeRequest{}, errTrailingData
	}

	var req analyzeRequest
	if raw, ok := fields["content"]; ok {
		if err := json.Unmarshal(raw, &req.Content); err != nil {
			return analyzeRequest{}, err
		}
	}
	return req, nil
}

func (r analyzeRequest) validate() error {
	if r.Content == nil || *r.Content == "" {
		return errContentRequired
	}
	return nil
}

func (t *Transport) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, t.maxBodyBytes)

	req, err := decodeAnalyzeRequest(r.Body)
	if err != nil {
		t.logger.Debug("rejecting undecodable request body", "error", err)
		t.renderError(w, http.StatusBadRequest, MsgContentRequired)
		return
	}

	if err := req.validate(); err != nil {
		t.renderError(w, http.StatusBadRequest, MsgContentRequired)
		return
	}

	result, err := t.service.Analyze(r.Context(), *req.Content)
	if err != nil {
		t.handleServiceError(w, err)
		return
	}

	t.renderJSON(w, http.StatusOK, result)
}

func (t *Transport) handleHealth(w http.ResponseWriter, _ *http.Request) {
	t.renderJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}

func (t *Transport) handleServiceError(w http.ResponseWriter, err error) {
	switch errs.KindOf(err) {
	case errs.Validation:
		t.renderError(w, http.StatusBadRequest, MsgContentRequired)
	case errs.Internal, errs.Unknown:
		t.renderError(w, http.StatusInternalServerError, MsgInternal)
	}
}

func (t *Transport) renderJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		t.logger.Error("failed to encode response", "error", err)
		WriteInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (t *Transport) renderError(w http.ResponseWriter, status int, message string) {
	t.renderJSON(w, status, model.ErrorResponse{Error: message})
}

// WriteInternalError writes the fixed 500 body. It is shared with the
// panic recovery middleware so every failure path answers identically.
func WriteInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":"` + MsgInternal + `"}` + "\n"))
}
