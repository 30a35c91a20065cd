package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nedhal-be/internal/models"
)

// EntryRepository caches the spreadsheet rows so the API can serve stale data
// across restarts and Apps Script outages. The cache is replaced wholesale
// each refresh cycle; rows are never updated in place.
type EntryRepository struct {
	collection *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{
		collection: db.Collection("entries"),
	}
}

// ReplaceAll swaps the cached rows for a freshly fetched set.
func (r *EntryRepository) ReplaceAll(ctx context.Context, entries []models.Entry) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, e := range entries {
		docs[i] = e
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// ListAll returns the cached rows in ascending timestamp order.
func (r *EntryRepository) ListAll(ctx context.Context) ([]models.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.Entry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
