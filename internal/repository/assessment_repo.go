package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workpulse/internal/model"
)

// AssessmentRepo is the ResultSink: computed assessments, append-only so
// older ones remain available for trend analysis.
type AssessmentRepo interface {
	Save(ctx context.Context, assessment *model.OverallAssessment) error
	GetLatest(ctx context.Context, userID string) (*model.OverallAssessment, error)
	History(ctx context.Context, userID string, rangeDays int) ([]*model.OverallAssessment, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Save(ctx context.Context, assessment *model.OverallAssessment) error {
	_, err := r.collection.InsertOne(ctx, assessment)
	return err
}

func (r *assessmentRepo) GetLatest(ctx context.Context, userID string) (*model.OverallAssessment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "computedAt", Value: -1}})

	var assessment model.OverallAssessment
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// History returns assessments from the last rangeDays, oldest first
func (r *assessmentRepo) History(ctx context.Context, userID string, rangeDays int) ([]*model.OverallAssessment, error) {
	since := time.Now().AddDate(0, 0, -rangeDays)
	filter := bson.M{
		"userId":     userID,
		"computedAt": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "computedAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.OverallAssessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}

	return assessments, nil
}
