package leads

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("lead not found")

type Repository interface {
	CreateLead(ctx context.Context, lead *Lead) error
	ListLeads(ctx context.Context, filter ListFilter, limit, offset int64) ([]Lead, error)
	CountLeads(ctx context.Context, filter ListFilter) (int64, error)
	UpdateLead(ctx context.Context, id, status, priority string, note *Note, now time.Time) (Lead, error)
	CreateVisitor(ctx context.Context, visitor *Visitor) error
	ListVisitors(ctx context.Context, status string, limit, offset int64) ([]Visitor, error)
	CountVisitors(ctx context.Context, status string) (int64, error)
}

type MongoRepository struct {
	leads    *mongo.Collection
	visitors *mongo.Collection
}

func NewMongoRepository(leads, visitors *mongo.Collection) *MongoRepository {
	return &MongoRepository{leads: leads, visitors: visitors}
}

func (r *MongoRepository) CreateLead(ctx context.Context, lead *Lead) error {
	if lead.ID == "" {
		lead.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.leads.InsertOne(ctx, lead)
	return err
}

func (r *MongoRepository) ListLeads(ctx context.Context, filter ListFilter, limit, offset int64) ([]Lead, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.leads.Find(ctx, leadFilterToBSON(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Lead, 0)
	for cursor.Next(ctx) {
		var lead Lead
		if err := cursor.Decode(&lead); err != nil {
			return nil, err
		}
		items = append(items, lead)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) CountLeads(ctx context.Context, filter ListFilter) (int64, error) {
	return r.leads.CountDocuments(ctx, leadFilterToBSON(filter))
}

func (r *MongoRepository) UpdateLead(ctx context.Context, id, status, priority string, note *Note, now time.Time) (Lead, error) {
	set := bson.M{"updated_at": now}
	if status != "" {
		set["status"] = status
	}
	if priority != "" {
		set["priority"] = priority
	}
	update := bson.M{"$set": set}
	if note != nil {
		update["$push"] = bson.M{"notes": *note}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Lead
	if err := r.leads.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Lead{}, ErrNotFound
		}
		return Lead{}, err
	}
	return updated, nil
}

func (r *MongoRepository) CreateVisitor(ctx context.Context, visitor *Visitor) error {
	if visitor.ID == "" {
		visitor.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.visitors.InsertOne(ctx, visitor)
	return err
}

func (r *MongoRepository) ListVisitors(ctx context.Context, status string, limit, offset int64) ([]Visitor, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.visitors.Find(ctx, visitorFilterToBSON(status), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Visitor, 0)
	for cursor.Next(ctx) {
		var visitor Visitor
		if err := cursor.Decode(&visitor); err != nil {
			return nil, err
		}
		items = append(items, visitor)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) CountVisitors(ctx context.Context, status string) (int64, error) {
	return r.visitors.CountDocuments(ctx, visitorFilterToBSON(status))
}

func leadFilterToBSON(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Source != "" {
		query["source"] = filter.Source
	}
	return query
}

func visitorFilterToBSON(status string) bson.M {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	return query
}
