package transport

import (
	"encoding/json"
	"net/http"
)

// Source identifies which tier answered a content read.
const (
	SourceDatabase = "database"
	SourceStatic   = "static"
)

type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func NewPagination(page, limit, total int64) Pagination {
	pages := int64(0)
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

type Envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data,omitempty"`
	Source     string            `json:"source,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteCachedJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func WriteData(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func WriteSourced(w http.ResponseWriter, message string, data interface{}, source string) {
	WriteJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Source:  source,
	})
}

func WritePaginated(w http.ResponseWriter, message string, data interface{}, p Pagination) {
	WriteJSON(w, http.StatusOK, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &p,
	})
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, Envelope{
		Success: false,
		Message: message,
		Errors:  details,
	})
}
