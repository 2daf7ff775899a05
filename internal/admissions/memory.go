package admissions

import (
	"context"
	"sort"
	"strconv"
	"sync"
)

// MemoryRepository holds applications for the lifetime of the process when
// no document store is reachable.
type MemoryRepository struct {
	mu     sync.Mutex
	apps   map[string]Application
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		apps:   make(map[string]Application),
		nextID: 1,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, app *Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if app.ID == "" {
		app.ID = strconv.Itoa(r.nextID)
		r.nextID++
	}
	r.apps[app.ApplicationID] = cloneApplication(*app)
	return nil
}

func (r *MemoryRepository) GetByApplicationID(ctx context.Context, applicationID string) (Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[applicationID]
	if !ok {
		return Application{}, ErrNotFound
	}
	return cloneApplication(app), nil
}

func (r *MemoryRepository) Save(ctx context.Context, app Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apps[app.ApplicationID]; !ok {
		return ErrNotFound
	}
	r.apps[app.ApplicationID] = cloneApplication(app)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, status string, limit, offset int64) ([]Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]Application, 0, len(r.apps))
	for _, app := range r.apps {
		if status != "" && app.Status != status {
			continue
		}
		matched = append(matched, cloneApplication(app))
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= int64(len(matched)) {
		return []Application{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MemoryRepository) Count(ctx context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	for _, app := range r.apps {
		if status != "" && app.Status != status {
			continue
		}
		total++
	}
	return total, nil
}

// cloneApplication copies the steps map so callers cannot mutate stored
// state after the lock is released.
func cloneApplication(app Application) Application {
	steps := make(map[string]StepData, len(app.Steps))
	for key, data := range app.Steps {
		copied := make(StepData, len(data))
		for field, value := range data {
			copied[field] = value
		}
		steps[key] = copied
	}
	app.Steps = steps
	return app
}
