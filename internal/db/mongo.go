package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	SiteSettings  *mongo.Collection
	About         *mongo.Collection
	Sliders       *mongo.Collection
	Services      *mongo.Collection
	TeamMembers   *mongo.Collection
	Testimonials  *mongo.Collection
	Gallery       *mongo.Collection
	BlogPosts     *mongo.Collection
	Events        *mongo.Collection
	Statistics    *mongo.Collection
	FAQs          *mongo.Collection
	LivingOptions *mongo.Collection
	HomePopup     *mongo.Collection
	Leads         *mongo.Collection
	Visitors      *mongo.Collection
	Admissions    *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		SiteSettings:  db.Collection("site_settings"),
		About:         db.Collection("about"),
		Sliders:       db.Collection("sliders"),
		Services:      db.Collection("services"),
		TeamMembers:   db.Collection("team_members"),
		Testimonials:  db.Collection("testimonials"),
		Gallery:       db.Collection("gallery"),
		BlogPosts:     db.Collection("blog_posts"),
		Events:        db.Collection("events"),
		Statistics:    db.Collection("statistics"),
		FAQs:          db.Collection("faqs"),
		LivingOptions: db.Collection("living_options"),
		HomePopup:     db.Collection("home_popup"),
		Leads:         db.Collection("leads"),
		Visitors:      db.Collection("visitors"),
		Admissions:    db.Collection("admissions"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Services.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.BlogPosts.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Leads.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "source", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Visitors.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "visit_date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Admissions.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "application_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	return nil
}
