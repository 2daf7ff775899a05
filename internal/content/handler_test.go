package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suyashwaghate123/happyhomesbackend/internal/cache"
	"github.com/suyashwaghate123/happyhomesbackend/internal/transport"
)

type mapCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.items[key]
	return value, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func newTestRouter(c cache.Cache) *chi.Mux {
	resolver := NewResolver(nil, testLogger())
	handler := NewHandler(resolver, c, time.Minute, testLogger())

	r := chi.NewRouter()
	r.Get("/api/website/home", handler.GetHomePage)
	r.Get("/api/website/services", handler.GetServices)
	r.Get("/api/website/services/{id}", handler.GetServiceByID)
	r.Get("/api/website/blogs/{slug}", handler.GetBlogBySlug)
	r.Get("/api/website/faqs", handler.GetFAQs)
	return r
}

func doGet(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, transport.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var envelope transport.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec, envelope
}

func TestGetServicesEnvelope(t *testing.T) {
	router := newTestRouter(cache.NewNoop())

	rec, envelope := doGet(t, router, "/api/website/services")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !envelope.Success {
		t.Fatal("expected success envelope")
	}
	if envelope.Source != transport.SourceStatic {
		t.Fatalf("expected static source, got %q", envelope.Source)
	}
	if envelope.Data == nil {
		t.Fatal("expected data payload")
	}
}

func TestGetServiceDetailNotFound(t *testing.T) {
	router := newTestRouter(cache.NewNoop())

	rec, envelope := doGet(t, router, "/api/website/services/no-such-service")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if envelope.Success {
		t.Fatal("expected failure envelope")
	}
}

func TestGetBlogDetailBySlug(t *testing.T) {
	router := newTestRouter(cache.NewNoop())

	rec, envelope := doGet(t, router, "/api/website/blogs/"+staticBlogPosts[0].Slug)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if envelope.Source != transport.SourceStatic {
		t.Fatalf("expected static source, got %q", envelope.Source)
	}
}

func TestHomeServedFromCacheOnSecondRequest(t *testing.T) {
	store := newMapCache()
	router := newTestRouter(store)

	rec, _ := doGet(t, router, "/api/website/home")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := store.items["content:home"]; !ok {
		t.Fatal("expected home payload cached after first request")
	}

	rec2, envelope := doGet(t, router, "/api/website/home")
	if rec2.Code != http.StatusOK {
		t.Fatalf("expected 200 from cache, got %d", rec2.Code)
	}
	if !envelope.Success {
		t.Fatal("expected cached envelope to round-trip")
	}
}

func TestFAQCategoryQuery(t *testing.T) {
	router := newTestRouter(cache.NewNoop())

	rec, envelope := doGet(t, router, "/api/website/faqs?category=pricing")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	raw, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	var faqs []FAQ
	if err := json.Unmarshal(raw, &faqs); err != nil {
		t.Fatalf("decode faqs: %v", err)
	}
	if len(faqs) == 0 {
		t.Fatal("expected pricing faqs")
	}
	for _, faq := range faqs {
		if faq.Category != "pricing" {
			t.Fatalf("unexpected category %q", faq.Category)
		}
	}
}
