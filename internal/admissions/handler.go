package admissions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suyashwaghate123/happyhomesbackend/internal/httpx"
	"github.com/suyashwaghate123/happyhomesbackend/internal/leads"
	"github.com/suyashwaghate123/happyhomesbackend/internal/middleware"
	"github.com/suyashwaghate123/happyhomesbackend/internal/transport"
	"github.com/suyashwaghate123/happyhomesbackend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}

func (h *Handler) SubmitStep(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req StepRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admission step: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admission step: validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	app, err := h.service.SubmitStep(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStep):
			transport.WriteError(w, http.StatusBadRequest, "Validation failed", map[string]string{"step": "min"})
		case errors.Is(err, ErrNotFound):
			log.Warn("admission step: not found", slog.String("application_id", req.ApplicationID))
			transport.WriteError(w, http.StatusNotFound, "Application not found", nil)
		default:
			log.Error("admission step: persistence error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.", nil)
		}
		return
	}

	log.Info("admission step: ok",
		slog.String("application_id", app.ApplicationID),
		slog.Int("step", req.Step),
	)
	transport.WriteData(w, http.StatusOK, fmt.Sprintf("Step %d saved successfully", req.Step), map[string]interface{}{
		"applicationId": app.ApplicationID,
		"currentStep":   app.CurrentStep,
	})
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CompleteRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admission complete: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admission complete: validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	app, lead, err := h.service.Complete(ctx, req.ApplicationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admission complete: not found", slog.String("application_id", req.ApplicationID))
			transport.WriteError(w, http.StatusNotFound, "Application not found", nil)
			return
		}
		log.Error("admission complete: persistence error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.", nil)
		return
	}

	go func(created leads.Lead) {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if err := h.service.NotifyCompleted(notifyCtx, created); err != nil {
			h.log.Warn("admission complete: notification failed",
				slog.String("application_id", app.ApplicationID),
				slog.String("error", err.Error()),
			)
		}
	}(lead)

	log.Info("admission complete: ok", slog.String("application_id", app.ApplicationID))
	transport.WriteData(w, http.StatusOK, "Application submitted successfully!", map[string]interface{}{
		"applicationId": app.ApplicationID,
		"status":        app.Status,
	})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	page, limit, err := httpx.ParsePageLimit(r.URL.Query(), 20, 100)
	if err != nil {
		log.Warn("admin admission list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.ListAdmin(ctx, status, limit, (page-1)*limit)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "invalid query", map[string]string{"status": "oneof"})
			return
		}
		log.Error("admin admission list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Error fetching applications", nil)
		return
	}

	log.Info("admin admission list: ok", slog.Int("count", len(items)))
	transport.WritePaginated(w, "Applications retrieved successfully", items, transport.NewPagination(page, limit, total))
}

func (h *Handler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	applicationID := strings.TrimSpace(chi.URLParam(r, "applicationId"))
	if applicationID == "" {
		log.Warn("admin admission status: missing application id")
		transport.WriteError(w, http.StatusBadRequest, "missing application id", nil)
		return
	}

	var req AdminStatusRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin admission status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin admission status: validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	app, err := h.service.UpdateStatus(ctx, applicationID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			transport.WriteError(w, http.StatusBadRequest, "Validation failed", map[string]string{"status": "oneof"})
		case errors.Is(err, ErrNotFound):
			log.Warn("admin admission status: not found", slog.String("application_id", applicationID))
			transport.WriteError(w, http.StatusNotFound, "Application not found", nil)
		default:
			log.Error("admin admission status: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "Error updating application", nil)
		}
		return
	}

	log.Info("admin admission status: ok",
		slog.String("application_id", applicationID),
		slog.String("status", app.Status),
	)
	transport.WriteData(w, http.StatusOK, "Application updated successfully", app)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	applicationID := strings.TrimSpace(chi.URLParam(r, "applicationId"))
	if applicationID == "" {
		log.Warn("admission get: missing application id")
		transport.WriteError(w, http.StatusBadRequest, "missing application id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	app, err := h.service.Get(ctx, applicationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admission get: not found", slog.String("application_id", applicationID))
			transport.WriteError(w, http.StatusNotFound, "Application not found", nil)
			return
		}
		log.Error("admission get: persistence error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.", nil)
		return
	}

	log.Info("admission get: ok", slog.String("application_id", applicationID))
	transport.WriteData(w, http.StatusOK, "Application retrieved successfully", app)
}
