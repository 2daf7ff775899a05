package content

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suyashwaghate123/happyhomesbackend/internal/db"
)

// Store is the document-store capability the resolver reads through. A nil
// Store means no backend is attached and every read serves the bundled
// fixtures directly.
type Store interface {
	Settings(ctx context.Context) (*SiteSettings, error)
	About(ctx context.Context) (*About, error)
	Sliders(ctx context.Context) ([]Slider, error)
	Services(ctx context.Context, limit int64) ([]Service, error)
	ServiceByIDOrSlug(ctx context.Context, key string) (*Service, error)
	TeamMembers(ctx context.Context, limit int64) ([]TeamMember, error)
	Testimonials(ctx context.Context) ([]Testimonial, error)
	Gallery(ctx context.Context, category string) ([]GalleryImage, error)
	BlogPosts(ctx context.Context, limit int64) ([]BlogPost, error)
	BlogBySlug(ctx context.Context, slug string) (*BlogPost, error)
	IncrementBlogViews(ctx context.Context, id string) error
	Events(ctx context.Context) ([]Event, error)
	EventByIDOrSlug(ctx context.Context, key string) (*Event, error)
	Statistics(ctx context.Context) ([]Statistic, error)
	FAQs(ctx context.Context, category string) ([]FAQ, error)
	LivingOptions(ctx context.Context) ([]LivingOption, error)
	HomePopup(ctx context.Context) (*HomePopup, error)
}

type MongoStore struct {
	cols *db.Collections
}

func NewMongoStore(cols *db.Collections) *MongoStore {
	return &MongoStore{cols: cols}
}

var orderAsc = bson.D{{Key: "order", Value: 1}}

func activeFilter() bson.M {
	return bson.M{"is_active": true}
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]T, error) {
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func findSingleton[T any](ctx context.Context, col *mongo.Collection) (*T, error) {
	var item T
	if err := col.FindOne(ctx, bson.M{}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func findByIDOrSlug[T any](ctx context.Context, col *mongo.Collection, key string) (*T, error) {
	var item T
	err := col.FindOne(ctx, bson.M{"_id": key}).Decode(&item)
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	err = col.FindOne(ctx, bson.M{"slug": key}).Decode(&item)
	if err == nil {
		return &item, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return nil, err
}

func (s *MongoStore) Settings(ctx context.Context) (*SiteSettings, error) {
	return findSingleton[SiteSettings](ctx, s.cols.SiteSettings)
}

func (s *MongoStore) About(ctx context.Context) (*About, error) {
	return findSingleton[About](ctx, s.cols.About)
}

func (s *MongoStore) Sliders(ctx context.Context) ([]Slider, error) {
	return findAll[Slider](ctx, s.cols.Sliders, activeFilter(), options.Find().SetSort(orderAsc))
}

func (s *MongoStore) Services(ctx context.Context, limit int64) ([]Service, error) {
	opts := options.Find().SetSort(orderAsc)
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return findAll[Service](ctx, s.cols.Services, activeFilter(), opts)
}

func (s *MongoStore) ServiceByIDOrSlug(ctx context.Context, key string) (*Service, error) {
	return findByIDOrSlug[Service](ctx, s.cols.Services, key)
}

func (s *MongoStore) TeamMembers(ctx context.Context, limit int64) ([]TeamMember, error) {
	opts := options.Find().SetSort(orderAsc)
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return findAll[TeamMember](ctx, s.cols.TeamMembers, activeFilter(), opts)
}

func (s *MongoStore) Testimonials(ctx context.Context) ([]Testimonial, error) {
	return findAll[Testimonial](ctx, s.cols.Testimonials, activeFilter(), options.Find().SetSort(orderAsc))
}

func (s *MongoStore) Gallery(ctx context.Context, category string) ([]GalleryImage, error) {
	filter := activeFilter()
	if category != "" {
		filter["category"] = category
	}
	return findAll[GalleryImage](ctx, s.cols.Gallery, filter, options.Find().SetSort(orderAsc))
}

func (s *MongoStore) BlogPosts(ctx context.Context, limit int64) ([]BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return findAll[BlogPost](ctx, s.cols.BlogPosts, activeFilter(), opts)
}

func (s *MongoStore) BlogBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	var post BlogPost
	if err := s.cols.BlogPosts.FindOne(ctx, bson.M{"slug": slug}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *MongoStore) IncrementBlogViews(ctx context.Context, id string) error {
	_, err := s.cols.BlogPosts.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

func (s *MongoStore) Events(ctx context.Context) ([]Event, error) {
	return findAll[Event](ctx, s.cols.Events, activeFilter(), options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (s *MongoStore) EventByIDOrSlug(ctx context.Context, key string) (*Event, error) {
	return findByIDOrSlug[Event](ctx, s.cols.Events, key)
}

func (s *MongoStore) Statistics(ctx context.Context) ([]Statistic, error) {
	return findAll[Statistic](ctx, s.cols.Statistics, activeFilter(), options.Find().SetSort(orderAsc))
}

func (s *MongoStore) FAQs(ctx context.Context, category string) ([]FAQ, error) {
	filter := activeFilter()
	if category != "" {
		filter["category"] = category
	}
	return findAll[FAQ](ctx, s.cols.FAQs, filter, options.Find().SetSort(orderAsc))
}

func (s *MongoStore) LivingOptions(ctx context.Context) ([]LivingOption, error) {
	return findAll[LivingOption](ctx, s.cols.LivingOptions, activeFilter(), options.Find().SetSort(orderAsc))
}

func (s *MongoStore) HomePopup(ctx context.Context) (*HomePopup, error) {
	return findSingleton[HomePopup](ctx, s.cols.HomePopup)
}
