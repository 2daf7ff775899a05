package content

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/suyashwaghate123/happyhomesbackend/internal/transport"
)

type fakeStore struct {
	services    []Service
	sliders     []Slider
	blog        *BlogPost
	incremented []string
	err         error
}

func (f *fakeStore) Settings(ctx context.Context) (*SiteSettings, error) { return nil, f.err }
func (f *fakeStore) About(ctx context.Context) (*About, error)           { return nil, f.err }

func (f *fakeStore) Sliders(ctx context.Context) ([]Slider, error) {
	return f.sliders, f.err
}

func (f *fakeStore) Services(ctx context.Context, limit int64) ([]Service, error) {
	return f.services, f.err
}

func (f *fakeStore) ServiceByIDOrSlug(ctx context.Context, key string) (*Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.services {
		if f.services[i].ID == key || f.services[i].Slug == key {
			return &f.services[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) TeamMembers(ctx context.Context, limit int64) ([]TeamMember, error) {
	return nil, f.err
}
func (f *fakeStore) Testimonials(ctx context.Context) ([]Testimonial, error) { return nil, f.err }
func (f *fakeStore) Gallery(ctx context.Context, category string) ([]GalleryImage, error) {
	return nil, f.err
}
func (f *fakeStore) BlogPosts(ctx context.Context, limit int64) ([]BlogPost, error) {
	return nil, f.err
}

func (f *fakeStore) BlogBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.blog != nil && f.blog.Slug == slug {
		post := *f.blog
		return &post, nil
	}
	return nil, nil
}

func (f *fakeStore) IncrementBlogViews(ctx context.Context, id string) error {
	f.incremented = append(f.incremented, id)
	return nil
}

func (f *fakeStore) Events(ctx context.Context) ([]Event, error) { return nil, f.err }
func (f *fakeStore) EventByIDOrSlug(ctx context.Context, key string) (*Event, error) {
	return nil, f.err
}
func (f *fakeStore) Statistics(ctx context.Context) ([]Statistic, error)         { return nil, f.err }
func (f *fakeStore) FAQs(ctx context.Context, category string) ([]FAQ, error)    { return nil, f.err }
func (f *fakeStore) LivingOptions(ctx context.Context) ([]LivingOption, error)   { return nil, f.err }
func (f *fakeStore) HomePopup(ctx context.Context) (*HomePopup, error)           { return nil, f.err }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolverStaticWhenStoreAbsent(t *testing.T) {
	r := NewResolver(nil, testLogger())

	sliders, source := r.Sliders(context.Background())
	if source != transport.SourceStatic {
		t.Fatalf("expected static source, got %q", source)
	}
	if len(sliders) == 0 {
		t.Fatal("expected fixture sliders")
	}
	for i := 1; i < len(sliders); i++ {
		if sliders[i-1].Order > sliders[i].Order {
			t.Fatalf("sliders out of order at %d", i)
		}
	}
}

func TestResolverPrefersStoreData(t *testing.T) {
	store := &fakeStore{sliders: []Slider{{ID: "abc", Title: "Live slider", IsActive: true}}}
	r := NewResolver(store, testLogger())

	sliders, source := r.Sliders(context.Background())
	if source != transport.SourceDatabase {
		t.Fatalf("expected database source, got %q", source)
	}
	if len(sliders) != 1 || sliders[0].ID != "abc" {
		t.Fatalf("unexpected sliders: %+v", sliders)
	}
}

func TestResolverFallsBackOnStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection reset")}
	r := NewResolver(store, testLogger())

	services, source := r.Services(context.Background(), 0)
	if source != transport.SourceStatic {
		t.Fatalf("expected static source after store error, got %q", source)
	}
	if len(services) != len(staticServices) {
		t.Fatalf("expected %d fixture services, got %d", len(staticServices), len(services))
	}
}

func TestResolverFallsBackOnEmptyResult(t *testing.T) {
	store := &fakeStore{sliders: []Slider{}}
	r := NewResolver(store, testLogger())

	sliders, source := r.Sliders(context.Background())
	if source != transport.SourceStatic {
		t.Fatalf("expected static source for empty result, got %q", source)
	}
	if len(sliders) == 0 {
		t.Fatal("expected fixture sliders")
	}
}

func TestServiceLookupByIDAndSlug(t *testing.T) {
	r := NewResolver(nil, testLogger())

	byID, source, err := r.ServiceByIDOrSlug(context.Background(), "1")
	if err != nil {
		t.Fatalf("lookup by id: %v", err)
	}
	if source != transport.SourceStatic {
		t.Fatalf("expected static source, got %q", source)
	}

	bySlug, _, err := r.ServiceByIDOrSlug(context.Background(), byID.Slug)
	if err != nil {
		t.Fatalf("lookup by slug: %v", err)
	}
	if bySlug.ID != byID.ID {
		t.Fatalf("slug lookup returned %q, want %q", bySlug.ID, byID.ID)
	}

	if _, _, err := r.ServiceByIDOrSlug(context.Background(), "no-such-service"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBlogBySlugIncrementsViewsOnStorePath(t *testing.T) {
	store := &fakeStore{blog: &BlogPost{ID: "b1", Slug: "senior-wellness", Views: 7, IsActive: true}}
	r := NewResolver(store, testLogger())

	post, source, err := r.BlogBySlug(context.Background(), "senior-wellness")
	if err != nil {
		t.Fatalf("blog lookup: %v", err)
	}
	if source != transport.SourceDatabase {
		t.Fatalf("expected database source, got %q", source)
	}
	if post.Views != 8 {
		t.Fatalf("expected views 8, got %d", post.Views)
	}
	if len(store.incremented) != 1 || store.incremented[0] != "b1" {
		t.Fatalf("expected one increment for b1, got %v", store.incremented)
	}
}

func TestBlogBySlugStaticHasNoCounter(t *testing.T) {
	r := NewResolver(nil, testLogger())

	slug := staticBlogPosts[0].Slug
	before := staticBlogPosts[0].Views

	post, source, err := r.BlogBySlug(context.Background(), slug)
	if err != nil {
		t.Fatalf("blog lookup: %v", err)
	}
	if source != transport.SourceStatic {
		t.Fatalf("expected static source, got %q", source)
	}
	if post.Views != before || staticBlogPosts[0].Views != before {
		t.Fatal("static views must not change")
	}
}

func TestGalleryCategoryFilter(t *testing.T) {
	r := NewResolver(nil, testLogger())

	images, _ := r.Gallery(context.Background(), "activities")
	if len(images) == 0 {
		t.Fatal("expected activities images")
	}
	for _, img := range images {
		if img.Category != "activities" {
			t.Fatalf("unexpected category %q", img.Category)
		}
	}

	all, _ := r.Gallery(context.Background(), "")
	if len(all) <= len(images) {
		t.Fatalf("expected unfiltered set larger than %d, got %d", len(images), len(all))
	}
}

func TestHomeBundleLimits(t *testing.T) {
	r := NewResolver(nil, testLogger())

	data, source := r.Home(context.Background())
	if source != transport.SourceStatic {
		t.Fatalf("expected static source, got %q", source)
	}
	if len(data.Services) != 3 {
		t.Fatalf("expected 3 featured services, got %d", len(data.Services))
	}
	if len(data.Team) > 4 {
		t.Fatalf("expected at most 4 team members, got %d", len(data.Team))
	}
	if len(data.Blogs) != 3 {
		t.Fatalf("expected 3 recent blogs, got %d", len(data.Blogs))
	}
	if data.Popup != nil {
		t.Fatal("inactive popup must be omitted")
	}
	if data.Settings.SiteName == "" {
		t.Fatal("expected populated site settings")
	}
}
