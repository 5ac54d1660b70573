package httpserver

import (
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/mselser95/signbench/pkg/types"
)

// RunSource supplies the most recently completed benchmark run.
type RunSource interface {
	LatestRun() *types.BenchmarkRun
}

// RunHandler serves the latest benchmark run as JSON.
type RunHandler struct {
	source RunSource
	logger *zap.Logger
}

// NewRunHandler creates a new run handler.
func NewRunHandler(source RunSource, logger *zap.Logger) *RunHandler {
	return &RunHandler{
		source: source,
		logger: logger,
	}
}

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleLatestRun handles GET /api/run requests.
func (h *RunHandler) HandleLatestRun(w http.ResponseWriter, r *http.Request) {
	run := h.source.LatestRun()
	if run == nil {
		h.writeError(w, "no completed run yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	err := json.NewEncoder(w).Encode(run)
	if err != nil {
		h.logger.Error("failed-to-encode-run", zap.Error(err))
	}
}

func (h *RunHandler) writeError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}
