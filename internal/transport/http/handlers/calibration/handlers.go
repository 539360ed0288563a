package calibrationhandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"enginuity/internal/domain/calibration"
	"enginuity/internal/platform/metrics"
	"enginuity/internal/transport/http/api"
	"enginuity/internal/transport/http/middleware"
	"enginuity/internal/transport/http/shared"
)

type Service interface {
	Record(ctx context.Context, in calibration.RecordInput) (string, error)
	Writeup(ctx context.Context, engineerID string) (calibration.Writeup, error)
	Export(ctx context.Context, engineerID string) (calibration.Export, error)
}

type Handler struct {
	Service Service
	Metrics *metrics.Collector
}

func NewHandler(service Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calibrations", func(r chi.Router) {
		r.Post("/ratings", h.handleRecord)
		r.Get("/writeup/{engineerID}", h.handleWriteup)
		r.Get("/export/{engineerID}", h.handleExport)
	})
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var in calibration.RecordInput
	if !shared.DecodeJSON(w, r, requestID, &in) {
		return
	}

	id, err := h.Service.Record(r.Context(), in)
	if err != nil {
		if shared.RejectInvalid(w, requestID, err) {
			return
		}
		if errors.Is(err, calibration.ErrEngineerNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "engineer not found", requestID)
			return
		}
		slog.Error("calibration record failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to save calibration ratings", requestID)
		return
	}
	h.Metrics.CalibrationRecorded()
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleWriteup(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	writeup, err := h.Service.Writeup(r.Context(), chi.URLParam(r, "engineerID"))
	if err != nil {
		h.writeLookupError(w, requestID, err, "writeup_failed", "failed to build write-up")
		return
	}
	api.Success(w, writeup, requestID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	export, err := h.Service.Export(r.Context(), chi.URLParam(r, "engineerID"))
	if err != nil {
		if errors.Is(err, calibration.ErrExportFailed) {
			h.Metrics.ExportRendered("failed")
			slog.Error("export render failed", "err", err, "requestId", requestID)
			api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render export document", requestID)
			return
		}
		h.writeLookupError(w, requestID, err, "export_failed", "failed to render export document")
		return
	}
	h.Metrics.ExportRendered("ok")
	api.Attachment(w, export.ContentType, export.Filename, export.Body)
}

func (h *Handler) writeLookupError(w http.ResponseWriter, requestID string, err error, code, message string) {
	if shared.RejectInvalid(w, requestID, err) {
		return
	}
	if errors.Is(err, calibration.ErrCalibrationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "no calibration data found for engineer", requestID)
		return
	}
	slog.Warn(message, "err", err, "requestId", requestID)
	api.Fail(w, http.StatusInternalServerError, code, message, requestID)
}
