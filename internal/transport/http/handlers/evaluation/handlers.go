package evaluationhandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"enginuity/internal/domain/evaluation"
	"enginuity/internal/domain/narrative"
	"enginuity/internal/platform/metrics"
	"enginuity/internal/platform/validation"
	"enginuity/internal/transport/http/api"
	"enginuity/internal/transport/http/middleware"
	"enginuity/internal/transport/http/shared"
)

const (
	msgQuota        = "The AI service is currently unavailable due to quota limits. Please try again later or contact your administrator."
	msgUnauthorized = "There was an issue with the AI service authentication. Please contact your administrator."
	msgUnavailable  = "Error generating write-up"
)

type Service interface {
	ListCriteria(ctx context.Context) ([]evaluation.Criterion, error)
	Submit(ctx context.Context, in evaluation.SubmitInput) (evaluation.Submission, error)
	Latest(ctx context.Context, engineerID string) (evaluation.Scorecard, error)
	Recent(ctx context.Context, limit int) ([]evaluation.RecentEvaluation, error)
}

type Handler struct {
	Service   Service
	Narrative narrative.Gateway
	Metrics   *metrics.Collector
}

func NewHandler(service Service, gateway narrative.Gateway, collector *metrics.Collector) *Handler {
	if gateway == nil {
		gateway = narrative.Disabled{}
	}
	return &Handler{Service: service, Narrative: gateway, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluations", func(r chi.Router) {
		r.Get("/criteria", h.handleCriteria)
		r.Get("/recent", h.handleRecent)
		r.Post("/generate-writeup", h.handleGenerateWriteup)
		r.Post("/", h.handleSubmit)
		r.Get("/{engineerID}", h.handleLatest)
	})
}

func (h *Handler) handleCriteria(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.Service.ListCriteria(r.Context())
	if err != nil {
		slog.Warn("criteria list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "criteria_list_failed", "failed to list criteria", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, criteria, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	recent, err := h.Service.Recent(r.Context(), shared.QueryInt(r, "limit"))
	if err != nil {
		slog.Warn("recent evaluations failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "evaluation_list_failed", "failed to list evaluations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, recent, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLatest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	card, err := h.Service.Latest(r.Context(), chi.URLParam(r, "engineerID"))
	if err != nil {
		if shared.RejectInvalid(w, requestID, err) {
			return
		}
		slog.Warn("evaluation lookup failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "evaluation_get_failed", "failed to load evaluation", requestID)
		return
	}
	api.Success(w, card, requestID)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var in evaluation.SubmitInput
	if !shared.DecodeJSON(w, r, requestID, &in) {
		return
	}

	submission, err := h.Service.Submit(r.Context(), in)
	if err != nil {
		if shared.RejectInvalid(w, requestID, err) {
			return
		}
		switch {
		case errors.Is(err, evaluation.ErrEngineerNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "engineer not found", requestID)
		case errors.Is(err, evaluation.ErrCriterionNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "criterion not found", requestID)
		default:
			slog.Error("evaluation submit failed", "err", err, "requestId", requestID)
			api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to save evaluation", requestID)
		}
		return
	}
	h.Metrics.EvaluationSubmitted()
	api.Created(w, submission, requestID)
}

func (h *Handler) handleGenerateWriteup(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var req narrative.Request
	if !shared.DecodeJSON(w, r, requestID, &req) {
		return
	}
	if shared.RejectInvalid(w, requestID, validation.Struct(req)) {
		return
	}

	text, err := h.Narrative.Generate(r.Context(), req)
	if err != nil {
		kind := narrative.Classify(err)
		h.Metrics.NarrativeFailed(kind.String())
		slog.Warn("writeup generation failed", "err", err, "kind", kind.String(), "requestId", requestID)
		switch kind {
		case narrative.KindQuota:
			api.Fail(w, http.StatusServiceUnavailable, "ai_quota_exceeded", msgQuota, requestID)
		case narrative.KindUnauthorized:
			api.Fail(w, http.StatusBadGateway, "ai_auth_error", msgUnauthorized, requestID)
		default:
			api.Fail(w, http.StatusBadGateway, "ai_unavailable", msgUnavailable, requestID)
		}
		return
	}
	api.Success(w, map[string]string{"writeup": text}, requestID)
}
