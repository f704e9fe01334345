package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workpulse/internal/model"
)

// AnswerRepo is the AnswerSource: completed survey records, append-only.
// A newer record for the same user and domain supersedes the older one.
type AnswerRepo interface {
	Create(ctx context.Context, record *model.AnswerRecord) error
	GetLatest(ctx context.Context, userID string, domain model.SurveyDomain) (*model.AnswerRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.AnswerRecord, error)
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("answers"),
	}
}

func (r *answerRepo) Create(ctx context.Context, record *model.AnswerRecord) error {
	if record.CompletedAt.IsZero() {
		record.CompletedAt = time.Now()
	}
	// String hex IDs keep the _id decodable into the model's string field
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// GetLatest returns the most recently completed record for the domain,
// or nil when the user never completed that survey.
func (r *answerRepo) GetLatest(ctx context.Context, userID string, domain model.SurveyDomain) (*model.AnswerRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "completedAt", Value: -1}})

	var record model.AnswerRecord
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "domain": domain}, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *answerRepo) GetByUserID(ctx context.Context, userID string) ([]*model.AnswerRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.AnswerRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
