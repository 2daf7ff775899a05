package leads

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suyashwaghate123/happyhomesbackend/internal/httpx"
	"github.com/suyashwaghate123/happyhomesbackend/internal/middleware"
	"github.com/suyashwaghate123/happyhomesbackend/internal/transport"
	"github.com/suyashwaghate123/happyhomesbackend/internal/validation"
)

const notifyTimeout = 8 * time.Second

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

func requestMeta(r *http.Request) RequestMeta {
	return RequestMeta{
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
}

// dispatchLeadNotifications runs after the response is written; failures are
// logged and never surfaced to the submitter.
func (h *Handler) dispatchLeadNotifications(lead Lead, kind string, autoReply bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := h.service.NotifyLead(ctx, lead, kind); err != nil {
			h.log.Warn("lead notification failed",
				slog.String("lead_id", lead.ID),
				slog.String("error", err.Error()),
			)
		}
		if !autoReply {
			return
		}
		if err := h.service.NotifyAutoReply(ctx, lead); err != nil {
			h.log.Warn("lead auto-reply failed",
				slog.String("lead_id", lead.ID),
				slog.String("email", lead.Email),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (h *Handler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req InquiryRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("inquiry: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("inquiry: validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	lead, err := h.service.SubmitInquiry(ctx, req, requestMeta(r))
	if err != nil {
		log.Error("inquiry: persistence error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.", nil)
		return
	}

	h.dispatchLeadNotifications(lead, "General", true)

	log.Info("inquiry: ok", slog.String("lead_id", lead.ID))
	transport.WriteData(w, http.StatusCreated, "Thank you for your inquiry! Our team will contact you shortly.", map[string]interface{}{
		"id":    lead.ID,
		"name":  lead.Name,
		"email": lead.Email,
	})
}

func (h *Handler) SubmitAppointment(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req AppointmentRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("appointment: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("appointment: validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	lead, err := h.service.SubmitAppointment(ctx, req, requestMeta(r))
	if err != nil {
		log.Error("appointment: persistence error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.", nil)
		return
	}

	h.dispatchLeadNotifications(lead, "Appointment", true)

	log.Info("appointment: ok", slog.String("lead_id", lead.ID))
	transport.WriteData(w, http.StatusCreated, "Thank you for your visit request! We will confirm your appointment shortly.", map[string]interface{}{
		"id":            lead.ID,
		"name":          lead.Name,
		"preferredDate": lead.AppointmentDate,
	})
}

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req ContactRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("contact: validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	lead, err := h.service.SubmitContact(ctx, req, requestMeta(r))
	if err != nil {
		log.Error("contact: persistence error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.", nil)
		return
	}

	h.dispatchLeadNotifications(lead, "Contact Form", true)

	log.Info("contact: ok", slog.String("lead_id", lead.ID))
	transport.WriteData(w, http.StatusCreated, "Thank you for contacting us! We will get back to you soon.", map[string]interface{}{
		"id":   lead.ID,
		"name": lead.Name,
	})
}

func (h *Handler) SubmitVisit(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req VisitRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("visit: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("visit: validation error")
		transport.WriteError(w, http.StatusBadRequest, "All required fields must be provided", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	visitor, err := h.service.SubmitVisit(ctx, req, requestMeta(r))
	if err != nil {
		log.Error("visit: persistence error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.", nil)
		return
	}

	go func(v Visitor) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.service.NotifyVisit(ctx, v); err != nil {
			h.log.Warn("visit notification failed",
				slog.String("visitor_id", v.ID),
				slog.String("error", err.Error()),
			)
		}
	}(visitor)

	log.Info("visit: ok", slog.String("visitor_id", visitor.ID))
	transport.WriteData(w, http.StatusCreated, "Thank you! Your visit request has been submitted. We will contact you shortly to confirm.", map[string]interface{}{
		"id":        visitor.ID,
		"name":      visitor.Name,
		"visitDate": visitor.VisitDate,
	})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	page, limit, err := httpx.ParsePageLimit(r.URL.Query(), 20, 100)
	if err != nil {
		log.Warn("admin lead list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := ListFilter{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Source: strings.TrimSpace(r.URL.Query().Get("source")),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.ListAdmin(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "invalid query", map[string]string{"status": "oneof"})
			return
		}
		if errors.Is(err, ErrInvalidSource) {
			transport.WriteError(w, http.StatusBadRequest, "invalid query", map[string]string{"source": "oneof"})
			return
		}
		log.Error("admin lead list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Error fetching leads", nil)
		return
	}

	log.Info("admin lead list: ok", slog.Int("count", len(items)))
	transport.WritePaginated(w, "Leads retrieved successfully", items, transport.NewPagination(page, limit, total))
}

func (h *Handler) AdminListVisitors(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	page, limit, err := httpx.ParsePageLimit(r.URL.Query(), 20, 100)
	if err != nil {
		log.Warn("admin visitor list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.ListVisitorsAdmin(ctx, status, limit, (page-1)*limit)
	if err != nil {
		log.Error("admin visitor list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Error fetching visitors", nil)
		return
	}

	log.Info("admin visitor list: ok", slog.Int("count", len(items)))
	transport.WritePaginated(w, "Visitors retrieved successfully", items, transport.NewPagination(page, limit, total))
}

func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin lead update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req AdminUpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin lead update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin lead update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	lead, err := h.service.UpdateAdmin(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyUpdate):
			transport.WriteError(w, http.StatusBadRequest, "nothing to update", nil)
		case errors.Is(err, ErrInvalidStatus):
			transport.WriteError(w, http.StatusBadRequest, "Validation failed", map[string]string{"status": "oneof"})
		case errors.Is(err, ErrInvalidPriority):
			transport.WriteError(w, http.StatusBadRequest, "Validation failed", map[string]string{"priority": "oneof"})
		case errors.Is(err, ErrNotFound):
			log.Warn("admin lead update: not found", slog.String("lead_id", id))
			transport.WriteError(w, http.StatusNotFound, "Lead not found", nil)
		default:
			log.Error("admin lead update: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "Error updating lead", nil)
		}
		return
	}

	log.Info("admin lead update: ok", slog.String("lead_id", id), slog.String("status", lead.Status))
	transport.WriteData(w, http.StatusOK, "Lead updated successfully", lead)
}
