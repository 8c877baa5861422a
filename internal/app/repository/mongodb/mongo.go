package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"luminatext/internal/app/model"
	"luminatext/internal/app/repository"
)

const (
	databaseName   = "luminatext"
	collectionName = "transcriptions"

	serverSelectionTimeout = 5 * time.Second
)

// HistoryDAO stores transcription records in a MongoDB collection.
type HistoryDAO struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewHistoryDAO connects to MongoDB and verifies connectivity with a ping.
func NewHistoryDAO(ctx context.Context, uri string) (*HistoryDAO, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &HistoryDAO{
		client:     client,
		collection: client.Database(databaseName).Collection(collectionName),
	}, nil
}

func (d *HistoryDAO) Insert(ctx context.Context, rec *model.TranscriptionRecord) (string, error) {
	doc := bson.M{
		"text":            rec.Text,
		"fileName":        rec.FileName,
		"duration":        rec.Duration,
		"fileSize":        rec.FileSize,
		"date":            rec.Date,
		"durationSeconds": rec.DurationSeconds,
		"fileSizeBytes":   rec.FileSizeBytes,
		"createdAt":       rec.CreatedAt,
		"metadata":        rec.Metadata,
	}

	result, err := d.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", storeError("insert", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

func (d *HistoryDAO) List(ctx context.Context, limit, skip int64) ([]model.TranscriptionRecord, int64, error) {
	total, err := d.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, storeError("count", err)
	}

	records := make([]model.TranscriptionRecord, 0, limit)
	if limit == 0 {
		return records, total, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := d.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, storeError("find", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc historyDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode record: %w", err)
		}
		records = append(records, doc.toRecord())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, storeError("cursor", err)
	}

	return records, total, nil
}

func (d *HistoryDAO) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, repository.ErrInvalidID
	}

	result, err := d.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, storeError("delete", err)
	}
	return result.DeletedCount > 0, nil
}

func (d *HistoryDAO) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx, nil); err != nil {
		return storeError("ping", err)
	}
	return nil
}

func (d *HistoryDAO) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// historyDocument mirrors the stored shape with the ObjectID still typed, so
// decoding does not depend on the model's string id.
type historyDocument struct {
	ID              primitive.ObjectID   `bson:"_id"`
	Text            string               `bson:"text"`
	FileName        string               `bson:"fileName"`
	Duration        string               `bson:"duration"`
	FileSize        string               `bson:"fileSize"`
	Date            string               `bson:"date"`
	DurationSeconds float64              `bson:"durationSeconds"`
	FileSizeBytes   int64                `bson:"fileSizeBytes"`
	CreatedAt       time.Time            `bson:"createdAt"`
	Metadata        model.RecordMetadata `bson:"metadata"`
}

func (doc historyDocument) toRecord() model.TranscriptionRecord {
	return model.TranscriptionRecord{
		ID:              doc.ID.Hex(),
		Text:            doc.Text,
		FileName:        doc.FileName,
		Duration:        doc.Duration,
		FileSize:        doc.FileSize,
		Date:            doc.Date,
		DurationSeconds: doc.DurationSeconds,
		FileSizeBytes:   doc.FileSizeBytes,
		CreatedAt:       doc.CreatedAt,
		Metadata:        doc.Metadata,
	}
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, repository.ErrUnavailable, err)
}
