package httpx

import (
	"net/url"
	"strings"
	"testing"
)

func TestParsePageLimitDefaults(t *testing.T) {
	page, limit, err := ParsePageLimit(url.Values{}, 20, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 20 {
		t.Fatalf("expected defaults 1/20, got %d/%d", page, limit)
	}
}

func TestParsePageLimitCapsLimit(t *testing.T) {
	values := url.Values{"page": {"3"}, "limit": {"500"}}
	page, limit, err := ParsePageLimit(values, 20, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 3 || limit != 100 {
		t.Fatalf("expected 3/100, got %d/%d", page, limit)
	}
}

func TestParsePageLimitRejectsGarbage(t *testing.T) {
	for _, values := range []url.Values{
		{"page": {"0"}},
		{"page": {"abc"}},
		{"limit": {"-5"}},
	} {
		if _, _, err := ParsePageLimit(values, 20, 100); err == nil {
			t.Fatalf("expected error for %v", values)
		}
	}
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &out)
	if err == nil {
		t.Fatal("expected error for concatenated documents")
	}
}
