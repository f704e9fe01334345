package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workpulse/internal/model"
)

// There is exactly one live parameter set; retraining replaces it wholesale.
const classifierModelKey = "burnout-classifier"

// ClassifierModelRepo persists the trained classifier weights as a single
// replaceable blob. load(save(x)) == x at the field level.
type ClassifierModelRepo interface {
	Save(ctx context.Context, weights *model.ClassifierWeights) error
	Load(ctx context.Context) (*model.ClassifierWeights, error)
	Exists(ctx context.Context) (bool, error)
}

type classifierModelRepo struct {
	collection *mongo.Collection
}

// NewClassifierModelRepo creates a new classifier model repository
func NewClassifierModelRepo(db *mongo.Database) ClassifierModelRepo {
	return &classifierModelRepo{
		collection: db.Collection("classifier_models"),
	}
}

type classifierModelDoc struct {
	Key     string                   `bson:"_id"`
	Weights *model.ClassifierWeights `bson:"weights"`
}

func (r *classifierModelRepo) Save(ctx context.Context, weights *model.ClassifierWeights) error {
	doc := classifierModelDoc{Key: classifierModelKey, Weights: weights}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": classifierModelKey}, doc, opts)
	return err
}

func (r *classifierModelRepo) Load(ctx context.Context) (*model.ClassifierWeights, error) {
	var doc classifierModelDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": classifierModelKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Weights, nil
}

func (r *classifierModelRepo) Exists(ctx context.Context) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": classifierModelKey})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
