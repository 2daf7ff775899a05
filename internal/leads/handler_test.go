package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suyashwaghate123/happyhomesbackend/internal/transport"
	"github.com/suyashwaghate123/happyhomesbackend/internal/validation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newIntakeRouter(t *testing.T) (*chi.Mux, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	handler := NewHandler(NewService(repo, time.UTC, nil), validation.New(), testLogger())

	router := chi.NewRouter()
	router.Post("/inquiry", handler.SubmitInquiry)
	return router, repo
}

func postJSON(t *testing.T, router http.Handler, path string, payload map[string]interface{}) (int, transport.Envelope) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env transport.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec.Code, env
}

func leadCount(t *testing.T, repo *MemoryRepository) int64 {
	t.Helper()
	total, err := repo.CountLeads(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("count leads: %v", err)
	}
	return total
}

func TestSubmitInquiryMissingEmailRejectedWithoutPersisting(t *testing.T) {
	router, repo := newIntakeRouter(t)

	code, env := postJSON(t, router, "/inquiry", map[string]interface{}{
		"name":  "Shanta Deshpande",
		"phone": "9876543210",
	})

	if code != http.StatusBadRequest || env.Success {
		t.Fatalf("expected 400 failure envelope, got code=%d success=%v", code, env.Success)
	}
	if env.Errors["Email"] != "required" {
		t.Fatalf("expected email field detail, got %v", env.Errors)
	}
	if n := leadCount(t, repo); n != 0 {
		t.Fatalf("rejected submission must not persist, found %d leads", n)
	}
}

func TestSubmitInquiryRejectsUnknownInquiryType(t *testing.T) {
	router, repo := newIntakeRouter(t)

	code, env := postJSON(t, router, "/inquiry", map[string]interface{}{
		"name":        "Shanta Deshpande",
		"email":       "shanta@example.com",
		"phone":       "9876543210",
		"inquiryType": "bogus-type",
	})

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Errors["InquiryType"] != "oneof" {
		t.Fatalf("expected inquiryType field detail, got %v", env.Errors)
	}
	if n := leadCount(t, repo); n != 0 {
		t.Fatalf("rejected submission must not persist, found %d leads", n)
	}
}

func TestSubmitInquiryRejectsUnknownContactMethod(t *testing.T) {
	router, repo := newIntakeRouter(t)

	code, env := postJSON(t, router, "/inquiry", map[string]interface{}{
		"name":                   "Shanta Deshpande",
		"email":                  "shanta@example.com",
		"phone":                  "9876543210",
		"preferredContactMethod": "fax",
	})

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Errors["PreferredContactMethod"] != "oneof" {
		t.Fatalf("expected preferredContactMethod field detail, got %v", env.Errors)
	}
	if n := leadCount(t, repo); n != 0 {
		t.Fatalf("rejected submission must not persist, found %d leads", n)
	}
}

func TestSubmitInquiryAcceptsKnownEnums(t *testing.T) {
	router, repo := newIntakeRouter(t)

	code, env := postJSON(t, router, "/inquiry", map[string]interface{}{
		"name":                   "Shanta Deshpande",
		"email":                  "shanta@example.com",
		"phone":                  "9876543210",
		"inquiryType":            "admission",
		"preferredContactMethod": "whatsapp",
	})

	if code != http.StatusCreated || !env.Success {
		t.Fatalf("expected 201 success, got code=%d success=%v", code, env.Success)
	}
	if n := leadCount(t, repo); n != 1 {
		t.Fatalf("expected one persisted lead, got %d", n)
	}

	items, err := repo.ListLeads(context.Background(), ListFilter{}, 10, 0)
	if err != nil {
		t.Fatalf("list leads: %v", err)
	}
	if items[0].ServiceInterested != "admission" {
		t.Fatalf("expected inquiry type carried into the lead, got %q", items[0].ServiceInterested)
	}
}
