package content

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/suyashwaghate123/happyhomesbackend/internal/transport"
)

var ErrNotFound = errors.New("content not found")

// Resolver answers every content read through a two-tier policy: query the
// document store first, serve the bundled fixtures when the store is absent,
// fails, or comes back empty. Both tiers apply the same filter and sort so
// callers cannot tell which one answered except via the source tag.
type Resolver struct {
	store Store
	log   *slog.Logger
}

func NewResolver(store Store, log *slog.Logger) *Resolver {
	return &Resolver{store: store, log: log}
}

func (r *Resolver) Available() bool {
	return r.store != nil
}

func filterSort[T any](src []T, keep func(T) bool, less func(T, T) bool) []T {
	out := make([]T, 0, len(src))
	for _, item := range src {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func head[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

// resolveList runs the primary query and substitutes the fixture set on a
// nil store, a query error, or an empty result.
func resolveList[T any](ctx context.Context, r *Resolver, name string, primary func(context.Context) ([]T, error), fallback func() []T) ([]T, string) {
	if r.store != nil {
		items, err := primary(ctx)
		if err != nil {
			r.log.Warn(name+": backend error, using static data", slog.String("error", err.Error()))
		} else if len(items) > 0 {
			return items, transport.SourceDatabase
		}
	}
	return fallback(), transport.SourceStatic
}

func resolveSingleton[T any](ctx context.Context, r *Resolver, name string, primary func(context.Context) (*T, error), fallback T) (T, string) {
	if r.store != nil {
		item, err := primary(ctx)
		if err != nil {
			r.log.Warn(name+": backend error, using static data", slog.String("error", err.Error()))
		} else if item != nil {
			return *item, transport.SourceDatabase
		}
	}
	return fallback, transport.SourceStatic
}

func (r *Resolver) Settings(ctx context.Context) (SiteSettings, string) {
	return resolveSingleton(ctx, r, "settings",
		func(ctx context.Context) (*SiteSettings, error) { return r.store.Settings(ctx) },
		staticSiteSettings)
}

func (r *Resolver) AboutInfo(ctx context.Context) (About, string) {
	return resolveSingleton(ctx, r, "about",
		func(ctx context.Context) (*About, error) { return r.store.About(ctx) },
		staticAbout)
}

func (r *Resolver) Sliders(ctx context.Context) ([]Slider, string) {
	return resolveList(ctx, r, "sliders",
		func(ctx context.Context) ([]Slider, error) { return r.store.Sliders(ctx) },
		func() []Slider {
			return filterSort(staticSliders,
				func(s Slider) bool { return s.IsActive },
				func(a, b Slider) bool { return a.Order < b.Order })
		})
}

func (r *Resolver) Services(ctx context.Context, limit int64) ([]Service, string) {
	return resolveList(ctx, r, "services",
		func(ctx context.Context) ([]Service, error) { return r.store.Services(ctx, limit) },
		func() []Service {
			return head(filterSort(staticServices,
				func(s Service) bool { return s.IsActive },
				func(a, b Service) bool { return a.Order < b.Order }), int(limit))
		})
}

func (r *Resolver) TeamMembers(ctx context.Context, limit int64) ([]TeamMember, string) {
	return resolveList(ctx, r, "team",
		func(ctx context.Context) ([]TeamMember, error) { return r.store.TeamMembers(ctx, limit) },
		func() []TeamMember {
			return head(filterSort(staticTeamMembers,
				func(t TeamMember) bool { return t.IsActive },
				func(a, b TeamMember) bool { return a.Order < b.Order }), int(limit))
		})
}

func (r *Resolver) Testimonials(ctx context.Context) ([]Testimonial, string) {
	return resolveList(ctx, r, "testimonials",
		func(ctx context.Context) ([]Testimonial, error) { return r.store.Testimonials(ctx) },
		func() []Testimonial {
			return filterSort(staticTestimonials,
				func(t Testimonial) bool { return t.IsActive },
				func(a, b Testimonial) bool { return a.Order < b.Order })
		})
}

func (r *Resolver) Gallery(ctx context.Context, category string) ([]GalleryImage, string) {
	return resolveList(ctx, r, "gallery",
		func(ctx context.Context) ([]GalleryImage, error) { return r.store.Gallery(ctx, category) },
		func() []GalleryImage {
			return filterSort(staticGallery,
				func(g GalleryImage) bool { return g.IsActive && (category == "" || g.Category == category) },
				func(a, b GalleryImage) bool { return a.Order < b.Order })
		})
}

func (r *Resolver) BlogPosts(ctx context.Context, limit int64) ([]BlogPost, string) {
	return resolveList(ctx, r, "blogs",
		func(ctx context.Context) ([]BlogPost, error) { return r.store.BlogPosts(ctx, limit) },
		func() []BlogPost {
			return head(filterSort(staticBlogPosts,
				func(b BlogPost) bool { return b.IsActive },
				func(a, b BlogPost) bool { return a.Date > b.Date }), int(limit))
		})
}

// BlogBySlug bumps the stored view counter only on the database path;
// fixtures have no write target.
func (r *Resolver) BlogBySlug(ctx context.Context, slug string) (*BlogPost, string, error) {
	if r.store != nil {
		post, err := r.store.BlogBySlug(ctx, slug)
		if err != nil {
			r.log.Warn("blog detail: backend error, using static data", slog.String("error", err.Error()))
		} else if post != nil {
			if err := r.store.IncrementBlogViews(ctx, post.ID); err != nil {
				r.log.Warn("blog detail: view counter update failed", slog.String("error", err.Error()))
			} else {
				post.Views++
			}
			return post, transport.SourceDatabase, nil
		}
	}

	for i := range staticBlogPosts {
		if staticBlogPosts[i].Slug == slug {
			post := staticBlogPosts[i]
			return &post, transport.SourceStatic, nil
		}
	}
	return nil, "", ErrNotFound
}

func (r *Resolver) ServiceByIDOrSlug(ctx context.Context, key string) (*Service, string, error) {
	if r.store != nil {
		svc, err := r.store.ServiceByIDOrSlug(ctx, key)
		if err != nil {
			r.log.Warn("service detail: backend error, using static data", slog.String("error", err.Error()))
		} else if svc != nil {
			return svc, transport.SourceDatabase, nil
		}
	}

	for i := range staticServices {
		if staticServices[i].ID == key || staticServices[i].Slug == key {
			svc := staticServices[i]
			return &svc, transport.SourceStatic, nil
		}
	}
	return nil, "", ErrNotFound
}

func (r *Resolver) Events(ctx context.Context) ([]Event, string) {
	return resolveList(ctx, r, "events",
		func(ctx context.Context) ([]Event, error) { return r.store.Events(ctx) },
		func() []Event {
			return filterSort(staticEvents,
				func(e Event) bool { return e.IsActive },
				func(a, b Event) bool { return a.Date > b.Date })
		})
}

func (r *Resolver) EventByIDOrSlug(ctx context.Context, key string) (*Event, string, error) {
	if r.store != nil {
		ev, err := r.store.EventByIDOrSlug(ctx, key)
		if err != nil {
			r.log.Warn("event detail: backend error, using static data", slog.String("error", err.Error()))
		} else if ev != nil {
			return ev, transport.SourceDatabase, nil
		}
	}

	for i := range staticEvents {
		if staticEvents[i].ID == key || staticEvents[i].Slug == key {
			ev := staticEvents[i]
			return &ev, transport.SourceStatic, nil
		}
	}
	return nil, "", ErrNotFound
}

func (r *Resolver) Statistics(ctx context.Context) ([]Statistic, string) {
	return resolveList(ctx, r, "statistics",
		func(ctx context.Context) ([]Statistic, error) { return r.store.Statistics(ctx) },
		func() []Statistic {
			return filterSort(staticStatistics,
				func(s Statistic) bool { return s.IsActive },
				func(a, b Statistic) bool { return a.Order < b.Order })
		})
}

func (r *Resolver) FAQs(ctx context.Context, category string) ([]FAQ, string) {
	return resolveList(ctx, r, "faqs",
		func(ctx context.Context) ([]FAQ, error) { return r.store.FAQs(ctx, category) },
		func() []FAQ {
			return filterSort(staticFAQs,
				func(f FAQ) bool { return f.IsActive && (category == "" || f.Category == category) },
				func(a, b FAQ) bool { return a.Order < b.Order })
		})
}

func (r *Resolver) LivingOptions(ctx context.Context) ([]LivingOption, string) {
	return resolveList(ctx, r, "living options",
		func(ctx context.Context) ([]LivingOption, error) { return r.store.LivingOptions(ctx) },
		func() []LivingOption {
			return filterSort(staticLivingOptions,
				func(l LivingOption) bool { return l.IsActive },
				func(a, b LivingOption) bool { return a.Order < b.Order })
		})
}

func (r *Resolver) Popup(ctx context.Context) (HomePopup, string) {
	return resolveSingleton(ctx, r, "popup",
		func(ctx context.Context) (*HomePopup, error) { return r.store.HomePopup(ctx) },
		staticHomePopup)
}

// Home assembles the landing-page bundle. Category lookups run concurrently
// and each applies its own fallback independently; one failing category
// never affects the others.
func (r *Resolver) Home(ctx context.Context) (HomeData, string) {
	var data HomeData
	var wg sync.WaitGroup

	wg.Add(9)
	go func() { defer wg.Done(); data.Settings, _ = r.Settings(ctx) }()
	go func() { defer wg.Done(); data.Sliders, _ = r.Sliders(ctx) }()
	go func() { defer wg.Done(); data.Services, _ = r.Services(ctx, 3) }()
	go func() { defer wg.Done(); data.About, _ = r.AboutInfo(ctx) }()
	go func() { defer wg.Done(); data.Testimonials, _ = r.Testimonials(ctx) }()
	go func() { defer wg.Done(); data.Team, _ = r.TeamMembers(ctx, 4) }()
	go func() { defer wg.Done(); data.Blogs, _ = r.BlogPosts(ctx, 3) }()
	go func() { defer wg.Done(); data.Statistics, _ = r.Statistics(ctx) }()
	go func() {
		defer wg.Done()
		popup, _ := r.Popup(ctx)
		if popup.IsActive {
			data.Popup = &popup
		}
	}()
	wg.Wait()

	return data, r.sourceLabel()
}

func (r *Resolver) AboutPage(ctx context.Context) (AboutData, string) {
	var data AboutData
	var wg sync.WaitGroup

	wg.Add(4)
	go func() { defer wg.Done(); data.About, _ = r.AboutInfo(ctx) }()
	go func() { defer wg.Done(); data.Team, _ = r.TeamMembers(ctx, 0) }()
	go func() { defer wg.Done(); data.Statistics, _ = r.Statistics(ctx) }()
	go func() { defer wg.Done(); data.Testimonials, _ = r.Testimonials(ctx) }()
	wg.Wait()

	return data, r.sourceLabel()
}

func (r *Resolver) sourceLabel() string {
	if r.store != nil {
		return transport.SourceDatabase
	}
	return transport.SourceStatic
}
