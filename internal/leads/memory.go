package leads

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"
)

// MemoryRepository is the process-lifetime fallback used when no document
// store is reachable. Records do not survive a restart; callers accept that
// trade-off when the store is down.
type MemoryRepository struct {
	mu       sync.Mutex
	leads    []Lead
	visitors []Visitor
	nextID   int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) allocateID() string {
	id := strconv.Itoa(r.nextID)
	r.nextID++
	return id
}

func (r *MemoryRepository) CreateLead(ctx context.Context, lead *Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lead.ID == "" {
		lead.ID = r.allocateID()
	}
	r.leads = append(r.leads, *lead)
	return nil
}

func (r *MemoryRepository) ListLeads(ctx context.Context, filter ListFilter, limit, offset int64) ([]Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		if filter.Status != "" && lead.Status != filter.Status {
			continue
		}
		if filter.Source != "" && lead.Source != filter.Source {
			continue
		}
		matched = append(matched, lead)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, limit, offset), nil
}

func (r *MemoryRepository) CountLeads(ctx context.Context, filter ListFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	for _, lead := range r.leads {
		if filter.Status != "" && lead.Status != filter.Status {
			continue
		}
		if filter.Source != "" && lead.Source != filter.Source {
			continue
		}
		total++
	}
	return total, nil
}

func (r *MemoryRepository) UpdateLead(ctx context.Context, id, status, priority string, note *Note, now time.Time) (Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.leads {
		if r.leads[i].ID != id {
			continue
		}
		if status != "" {
			r.leads[i].Status = status
		}
		if priority != "" {
			r.leads[i].Priority = priority
		}
		if note != nil {
			r.leads[i].Notes = append(r.leads[i].Notes, *note)
		}
		r.leads[i].UpdatedAt = now
		return r.leads[i], nil
	}
	return Lead{}, ErrNotFound
}

func (r *MemoryRepository) CreateVisitor(ctx context.Context, visitor *Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if visitor.ID == "" {
		visitor.ID = r.allocateID()
	}
	r.visitors = append(r.visitors, *visitor)
	return nil
}

func (r *MemoryRepository) ListVisitors(ctx context.Context, status string, limit, offset int64) ([]Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]Visitor, 0, len(r.visitors))
	for _, visitor := range r.visitors {
		if status != "" && visitor.Status != status {
			continue
		}
		matched = append(matched, visitor)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, limit, offset), nil
}

func (r *MemoryRepository) CountVisitors(ctx context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	for _, visitor := range r.visitors {
		if status != "" && visitor.Status != status {
			continue
		}
		total++
	}
	return total, nil
}

func paginate[T any](items []T, limit, offset int64) []T {
	if offset >= int64(len(items)) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && int64(len(items)) > limit {
		items = items[:limit]
	}
	return items
}
