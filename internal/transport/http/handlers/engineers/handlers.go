package engineershandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"enginuity/internal/domain/engineers"
	"enginuity/internal/transport/http/api"
	"enginuity/internal/transport/http/middleware"
	"enginuity/internal/transport/http/shared"
)

type Service interface {
	Create(ctx context.Context, profile engineers.Profile) (engineers.Engineer, error)
	Get(ctx context.Context, engineerID string) (engineers.Engineer, error)
	List(ctx context.Context) ([]engineers.Engineer, error)
	Update(ctx context.Context, engineerID string, profile engineers.Profile) (engineers.Engineer, error)
	Delete(ctx context.Context, engineerID string) error
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/engineers", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{engineerID}", h.handleGet)
		r.Put("/{engineerID}", h.handleUpdate)
		r.Delete("/{engineerID}", h.handleDelete)
	})
}

type profilePayload struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	CurrentRole    string `json:"currentRole"`
	CurrentLevel   string `json:"currentLevel"`
	Department     string `json:"department"`
	StartDate      string `json:"startDate"`
	TimeInRole     *int   `json:"timeInRole"`
	LastYearRating string `json:"lastYearRating"`
}

// profile converts the payload, reporting malformed dates on v.
func (p profilePayload) profile(v *shared.Validator) engineers.Profile {
	return engineers.Profile{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		CurrentRole:    p.CurrentRole,
		CurrentLevel:   p.CurrentLevel,
		Department:     p.Department,
		StartDate:      v.OptionalDate("startDate", p.StartDate),
		TimeInRole:     p.TimeInRole,
		LastYearRating: p.LastYearRating,
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		slog.Warn("engineer list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "engineer_list_failed", "failed to list engineers", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload profilePayload
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}

	validator := shared.NewValidator()
	profile := payload.profile(validator)
	if validator.Reject(w, requestID) {
		return
	}

	engineer, err := h.Service.Create(r.Context(), profile)
	if err != nil {
		h.writeError(w, r, err, "engineer_create_failed", "failed to create engineer")
		return
	}
	api.Created(w, engineer, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	engineer, err := h.Service.Get(r.Context(), chi.URLParam(r, "engineerID"))
	if err != nil {
		h.writeError(w, r, err, "engineer_get_failed", "failed to load engineer")
		return
	}
	api.Success(w, engineer, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload profilePayload
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}

	validator := shared.NewValidator()
	profile := payload.profile(validator)
	if validator.Reject(w, requestID) {
		return
	}

	engineer, err := h.Service.Update(r.Context(), chi.URLParam(r, "engineerID"), profile)
	if err != nil {
		h.writeError(w, r, err, "engineer_update_failed", "failed to update engineer")
		return
	}
	api.Success(w, engineer, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "engineerID")); err != nil {
		h.writeError(w, r, err, "engineer_delete_failed", "failed to delete engineer")
		return
	}
	api.NoContent(w)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	requestID := middleware.GetRequestID(r.Context())
	if shared.RejectInvalid(w, requestID, err) {
		return
	}
	switch {
	case errors.Is(err, engineers.ErrEngineerNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "engineer not found", requestID)
	case errors.Is(err, engineers.ErrEmailConflict):
		api.Fail(w, http.StatusConflict, "email_conflict", "email already exists", requestID)
	default:
		slog.Warn(message, "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, code, message, requestID)
	}
}
