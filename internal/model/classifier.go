package model

import "time"

// LayerWeights holds one dense layer's parameters. Weights is [out][in].
type LayerWeights struct {
	Weights [][]float64 `json:"weights" bson:"weights"`
	Biases  []float64   `json:"biases" bson:"biases"`
}

// ClassifierWeights is the trained parameter set of the neural risk
// classifier. Created by training, persisted whole, loaded at startup and
// replaced wholesale by retraining. Never partially mutated.
type ClassifierWeights struct {
	Layers    []LayerWeights `json:"layers" bson:"layers"`
	Trained   bool           `json:"trained" bson:"trained"`
	Version   int            `json:"version" bson:"version"`
	TrainedAt time.Time      `json:"trainedAt" bson:"trainedAt"`
}
