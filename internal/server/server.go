// Package server exposes the EATK evaluator and optimizer over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/substat-optimizer/internal/config"
	"github.com/iwvelando/substat-optimizer/internal/eatk"
	"github.com/iwvelando/substat-optimizer/internal/optimizer"
	"github.com/iwvelando/substat-optimizer/internal/report"
	"github.com/iwvelando/substat-optimizer/pkg/constants"
	"github.com/iwvelando/substat-optimizer/pkg/validation"
	"go.uber.org/zap"
)

// RequestIDHeader carries the identifier assigned to every request.
const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

type handler struct {
	logger        *zap.Logger
	maxBodySize   int64
	maxIterations int
	version       string
}

// Options configures the API handler.
type Options struct {
	MaxBodySize   int64
	MaxIterations int
	Version       string
}

// NewHandler constructs the HTTP handler that serves the evaluate and optimize API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = constants.DefaultServerMaxIterations
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		maxBodySize:   opts.MaxBodySize,
		maxIterations: opts.MaxIterations,
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/evaluate", h.handleEvaluate)
	mux.HandleFunc("/api/optimize", h.handleOptimize)
	mux.HandleFunc("/api/version", h.handleVersion)

	return withRequestID(mux)
}

// withRequestID reuses a well-formed incoming request ID or assigns a new one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type evaluateRequest struct {
	Profile eatk.StatProfile `json:"profile"`
	Rolls   eatk.RollSpec    `json:"rolls"`
}

type optimizeRequest struct {
	Profile       eatk.StatProfile `json:"profile"`
	Rolls         eatk.RollSpec    `json:"rolls"`
	MaxIterations int              `json:"maxIterations"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEvaluate"
	logger := h.requestLogger(r)
	if !h.allowMethod(w, r, http.MethodPost, logger, op) {
		return
	}

	defaults := config.Default()
	req := evaluateRequest{Profile: defaults.Profile, Rolls: defaults.Rolls}
	if !h.decode(w, r, &req, logger, op) {
		return
	}

	if err := validation.ValidateInputs(req.Profile, req.Rolls); err != nil {
		h.respondError(w, logger, http.StatusUnprocessableEntity, err.Error(), op)
		return
	}

	snapshot := report.Evaluate(req.Profile, req.Rolls)
	logger.Info("evaluated profile",
		zap.String("op", op),
		zap.Float64("eatk", snapshot.EATK),
	)
	h.writeJSON(w, logger, http.StatusOK, snapshot)
}

func (h *handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleOptimize"
	logger := h.requestLogger(r)
	if !h.allowMethod(w, r, http.MethodPost, logger, op) {
		return
	}

	conf := config.Default()
	req := optimizeRequest{
		Profile:       conf.Profile,
		Rolls:         conf.Rolls,
		MaxIterations: conf.Optimizer.MaxIterations,
	}
	if !h.decode(w, r, &req, logger, op) {
		return
	}

	if req.MaxIterations > h.maxIterations {
		h.respondError(w, logger, http.StatusUnprocessableEntity,
			fmt.Sprintf("maxIterations %d exceeds the server limit of %d", req.MaxIterations, h.maxIterations), op)
		return
	}

	conf.Profile = req.Profile
	conf.Rolls = req.Rolls
	conf.Optimizer.MaxIterations = req.MaxIterations

	start := time.Now()
	runner, err := optimizer.NewRunner(logger, conf)
	if err != nil {
		h.respondError(w, logger, http.StatusInternalServerError, err.Error(), op)
		return
	}
	result, err := runner.Run()
	if err != nil {
		h.respondError(w, logger, http.StatusUnprocessableEntity, err.Error(), op)
		return
	}

	logger.Debug("optimize request completed",
		zap.String("op", op),
		zap.Duration("duration", time.Since(start)),
	)
	h.writeJSON(w, logger, http.StatusOK, report.Build(runner.Profile(), runner.Rolls(), *result))
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)
	if !h.allowMethod(w, r, http.MethodGet, logger, "server.handleVersion") {
		return
	}
	h.writeJSON(w, logger, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) requestLogger(r *http.Request) *zap.Logger {
	return h.logger.With(zap.String("requestId", RequestID(r.Context())))
}

func (h *handler) allowMethod(w http.ResponseWriter, r *http.Request, method string, logger *zap.Logger, op string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	h.respondError(w, logger, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), op)
	return false
}

// decode reads a single JSON object into dst, rejecting unknown fields and
// trailing data. It writes the error response itself and reports success.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any, logger *zap.Logger, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil && dec.Decode(&struct{}{}) != io.EOF {
		err = errors.New("request body must contain a single JSON object")
	}
	if err == nil {
		return true
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondError(w, logger, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", maxBytesErr.Limit), op)
		return false
	}
	h.respondError(w, logger, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
	return false
}

func (h *handler) respondError(w http.ResponseWriter, logger *zap.Logger, status int, msg string, op string) {
	logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, logger, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}
