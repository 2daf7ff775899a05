package admissions

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("application not found")

type Repository interface {
	Create(ctx context.Context, app *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (Application, error)
	Save(ctx context.Context, app Application) error
	List(ctx context.Context, status string, limit, offset int64) ([]Application, error)
	Count(ctx context.Context, status string) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, app *Application) error {
	if app.ID == "" {
		app.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, app)
	return err
}

func (r *MongoRepository) GetByApplicationID(ctx context.Context, applicationID string) (Application, error) {
	var app Application
	err := r.col.FindOne(ctx, bson.M{"application_id": applicationID}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

func (r *MongoRepository) Save(ctx context.Context, app Application) error {
	result, err := r.col.ReplaceOne(ctx, bson.M{"application_id": app.ApplicationID}, app)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context, status string, limit, offset int64) ([]Application, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, statusFilterToBSON(status), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Application, 0)
	for cursor.Next(ctx) {
		var app Application
		if err := cursor.Decode(&app); err != nil {
			return nil, err
		}
		items = append(items, app)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, status string) (int64, error) {
	return r.col.CountDocuments(ctx, statusFilterToBSON(status))
}

func statusFilterToBSON(status string) bson.M {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	return query
}
