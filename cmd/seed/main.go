package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suyashwaghate123/happyhomesbackend/internal/config"
	"github.com/suyashwaghate123/happyhomesbackend/internal/content"
	"github.com/suyashwaghate123/happyhomesbackend/internal/db"
)

// Seeds the database from the bundled fixture dataset. Existing documents
// are left untouched; only missing ones are inserted.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required for seeding")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	fixtures := content.Fixtures()
	now := time.Now().In(cfg.Timezone)

	fixtures.Settings.ID = primitive.NewObjectID().Hex()
	upsert(ctx, cols.SiteSettings, bson.M{"site_name": fixtures.Settings.SiteName}, fixtures.Settings)

	fixtures.About.ID = primitive.NewObjectID().Hex()
	upsert(ctx, cols.About, bson.M{"title": fixtures.About.Title}, fixtures.About)

	fixtures.HomePopup.ID = primitive.NewObjectID().Hex()
	upsert(ctx, cols.HomePopup, bson.M{"title": fixtures.HomePopup.Title}, fixtures.HomePopup)

	for _, item := range fixtures.Sliders {
		item.ID = primitive.NewObjectID().Hex()
		upsert(ctx, cols.Sliders, bson.M{"title": item.Title}, item)
	}
	for _, item := range fixtures.Services {
		item.ID = primitive.NewObjectID().Hex()
		upsert(ctx, cols.Services, bson.M{"slug": item.Slug}, item)
	}
	for _, item := range fixtures.TeamMembers {
		item.ID = primitive.NewObjectID().Hex()
		upsert(ctx, cols.TeamMembers, bson.M{"name": item.Name}, item)
	}
	for _, item := range fixtures.Testimonials {
		item.ID = primitive.NewObjectID().Hex()
		upsert(ctx, cols.Testimonials, bson.M{"name": item.Name}, item)
	}
	for _, item := range fixtures.Gallery {
		item.ID = primitive.NewObjectID().Hex()
		upsert(ctx, cols.Gallery, bson.M{"title": item.Title}, item)
	}
	for _, item := range fixtures.BlogPosts {
		item.ID = primitive.NewObjectID().Hex()
		item.CreatedAt = now
		upsert(ctx, cols.BlogPosts, bson.M{"slug": item.Slug}, item)
	}
	for _, item := range fixtures.Events {
		item.ID = primitive.NewObjectID().Hex()
		upsert(ctx, cols.Events, bson.M{"slug": item.Slug}, item)
	}
	for _, item := range fixtures.Statistics {
		item.ID = primitive.NewObjectID().Hex()
		upsert(ctx, cols.Statistics, bson.M{"title": item.Title}, item)
	}
	for _, item := range fixtures.FAQs {
		item.ID = primitive.NewObjectID().Hex()
		upsert(ctx, cols.FAQs, bson.M{"question": item.Question}, item)
	}
	for _, item := range fixtures.LivingOptions {
		item.ID = primitive.NewObjectID().Hex()
		upsert(ctx, cols.LivingOptions, bson.M{"title": item.Title}, item)
	}

	log.Println("seed completed")
}

func upsert(ctx context.Context, col *mongo.Collection, filter bson.M, doc interface{}) {
	_, err := col.UpdateOne(ctx, filter, bson.M{"$setOnInsert": doc}, options.Update().SetUpsert(true))
	if err != nil {
		log.Fatalf("seed error for %s: %v", col.Name(), err)
	}
}
