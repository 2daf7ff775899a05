package content

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suyashwaghate123/happyhomesbackend/internal/cache"
	"github.com/suyashwaghate123/happyhomesbackend/internal/middleware"
	"github.com/suyashwaghate123/happyhomesbackend/internal/transport"
)

type Handler struct {
	resolver *Resolver
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

func NewHandler(resolver *Resolver, c cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
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

func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	if h.cache == nil {
		return false
	}
	cached, ok, err := h.cache.Get(r.Context(), key)
	if err != nil || !ok {
		return false
	}
	h.logWithRequest(r).Info("content: cache hit", slog.String("key", key))
	transport.WriteCachedJSON(w, http.StatusOK, cached)
	return true
}

func (h *Handler) storeCached(ctx context.Context, key string, envelope transport.Envelope) {
	if h.cache == nil {
		return
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return
	}
	_ = h.cache.Set(ctx, key, payload, h.cacheTTL)
}

func (h *Handler) writeSourced(w http.ResponseWriter, r *http.Request, cacheKey, message string, data interface{}, source string) {
	if cacheKey != "" {
		h.storeCached(r.Context(), cacheKey, transport.Envelope{
			Success: true,
			Message: message,
			Data:    data,
			Source:  source,
		})
	}
	transport.WriteSourced(w, message, data, source)
}

func (h *Handler) GetSiteSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	settings, source := h.resolver.Settings(ctx)
	h.logWithRequest(r).Info("settings: ok", slog.String("source", source))
	h.writeSourced(w, r, "", "Site settings retrieved successfully", settings, source)
}

func (h *Handler) GetHomePage(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r, "content:home") {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	data, source := h.resolver.Home(ctx)
	h.logWithRequest(r).Info("home: ok", slog.String("source", source))
	h.writeSourced(w, r, "content:home", "Home page data retrieved successfully", data, source)
}

func (h *Handler) GetAboutPage(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r, "content:about") {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	data, source := h.resolver.AboutPage(ctx)
	h.logWithRequest(r).Info("about: ok", slog.String("source", source))
	h.writeSourced(w, r, "content:about", "About page data retrieved successfully", data, source)
}

func (h *Handler) GetSliders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sliders, source := h.resolver.Sliders(ctx)
	h.logWithRequest(r).Info("sliders: ok", slog.Int("count", len(sliders)), slog.String("source", source))
	h.writeSourced(w, r, "", "Sliders retrieved successfully", sliders, source)
}

func (h *Handler) GetHomePopup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	popup, source := h.resolver.Popup(ctx)
	h.logWithRequest(r).Info("popup: ok", slog.String("source", source))
	h.writeSourced(w, r, "", "Home popup retrieved successfully", popup, source)
}

func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r, "content:services") {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	services, source := h.resolver.Services(ctx, 0)
	h.logWithRequest(r).Info("services: ok", slog.Int("count", len(services)), slog.String("source", source))
	h.writeSourced(w, r, "content:services", "Services retrieved successfully", services, source)
}

func (h *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	key := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	service, source, err := h.resolver.ServiceByIDOrSlug(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("service detail: not found", slog.String("key", key))
			transport.WriteError(w, http.StatusNotFound, "Service not found", nil)
			return
		}
		log.Error("service detail: error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Error fetching service", nil)
		return
	}

	log.Info("service detail: ok", slog.String("key", key), slog.String("source", source))
	h.writeSourced(w, r, "", "Service retrieved successfully", service, source)
}

func (h *Handler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	team, source := h.resolver.TeamMembers(ctx, 0)
	h.logWithRequest(r).Info("team: ok", slog.Int("count", len(team)), slog.String("source", source))
	h.writeSourced(w, r, "", "Team members retrieved successfully", team, source)
}

func (h *Handler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	testimonials, source := h.resolver.Testimonials(ctx)
	h.logWithRequest(r).Info("testimonials: ok", slog.Int("count", len(testimonials)), slog.String("source", source))
	h.writeSourced(w, r, "", "Testimonials retrieved successfully", testimonials, source)
}

func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	images, source := h.resolver.Gallery(ctx, "")
	h.logWithRequest(r).Info("gallery: ok", slog.Int("count", len(images)), slog.String("source", source))
	h.writeSourced(w, r, "", "Gallery images retrieved successfully", images, source)
}

func (h *Handler) GetGalleryByCategory(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(chi.URLParam(r, "category"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	images, source := h.resolver.Gallery(ctx, category)
	h.logWithRequest(r).Info("gallery by category: ok",
		slog.String("category", category),
		slog.Int("count", len(images)),
		slog.String("source", source))
	h.writeSourced(w, r, "", "Gallery images retrieved successfully", images, source)
}

func (h *Handler) GetBlogPosts(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r, "content:blogs") {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	blogs, source := h.resolver.BlogPosts(ctx, 0)
	h.logWithRequest(r).Info("blogs: ok", slog.Int("count", len(blogs)), slog.String("source", source))
	h.writeSourced(w, r, "content:blogs", "Blog posts retrieved successfully", blogs, source)
}

func (h *Handler) GetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	post, source, err := h.resolver.BlogBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("blog detail: not found", slog.String("slug", slug))
			transport.WriteError(w, http.StatusNotFound, "Blog post not found", nil)
			return
		}
		log.Error("blog detail: error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Error fetching blog post", nil)
		return
	}

	log.Info("blog detail: ok", slog.String("slug", slug), slog.String("source", source))
	h.writeSourced(w, r, "", "Blog post retrieved successfully", post, source)
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	events, source := h.resolver.Events(ctx)
	h.logWithRequest(r).Info("events: ok", slog.Int("count", len(events)), slog.String("source", source))
	h.writeSourced(w, r, "", "Events retrieved successfully", events, source)
}

func (h *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	key := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	event, source, err := h.resolver.EventByIDOrSlug(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("event detail: not found", slog.String("key", key))
			transport.WriteError(w, http.StatusNotFound, "Event not found", nil)
			return
		}
		log.Error("event detail: error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Error fetching event", nil)
		return
	}

	log.Info("event detail: ok", slog.String("key", key), slog.String("source", source))
	h.writeSourced(w, r, "", "Event retrieved successfully", event, source)
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	stats, source := h.resolver.Statistics(ctx)
	h.logWithRequest(r).Info("statistics: ok", slog.Int("count", len(stats)), slog.String("source", source))
	h.writeSourced(w, r, "", "Statistics retrieved successfully", stats, source)
}

func (h *Handler) GetFAQs(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	faqs, source := h.resolver.FAQs(ctx, category)
	h.logWithRequest(r).Info("faqs: ok",
		slog.String("category", category),
		slog.Int("count", len(faqs)),
		slog.String("source", source))
	h.writeSourced(w, r, "", "FAQs retrieved successfully", faqs, source)
}

func (h *Handler) GetLivingOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts, source := h.resolver.LivingOptions(ctx)
	h.logWithRequest(r).Info("living options: ok", slog.Int("count", len(opts)), slog.String("source", source))
	h.writeSourced(w, r, "", "Living options retrieved successfully", opts, source)
}
