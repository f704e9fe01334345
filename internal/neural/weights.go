package neural

import (
	"time"

	"workpulse/internal/feature"
	"workpulse/internal/model"
)

var layerShapes = [4][2]int{
	{feature.Count, hidden1},
	{hidden1, hidden2},
	{hidden2, hidden3},
	{hidden3, outputs},
}

// Weights exports the network's parameters for persistence.
// The returned value is a deep copy; mutating it does not touch the network.
func (n *Network) Weights() *model.ClassifierWeights {
	w := &model.ClassifierWeights{
		Layers:    make([]model.LayerWeights, len(n.layers)),
		Trained:   n.trained,
		Version:   n.version,
		TrainedAt: time.Now(),
	}
	for l, layer := range n.layers {
		lw := model.LayerWeights{
			Weights: make([][]float64, layer.out),
			Biases:  make([]float64, layer.out),
		}
		copy(lw.Biases, layer.b)
		for o := 0; o < layer.out; o++ {
			lw.Weights[o] = make([]float64, layer.in)
			copy(lw.Weights[o], layer.w[o])
		}
		w.Layers[l] = lw
	}
	return w
}

// FromWeights reconstructs a network from persisted parameters, validating
// that the shapes match the compiled architecture. Adam state is not
// persisted; a loaded network is for inference, retraining starts fresh.
func FromWeights(w *model.ClassifierWeights) (*Network, error) {
	if w == nil || !w.Trained || len(w.Layers) != len(layerShapes) {
		return nil, ErrInvalidModel
	}

	n := New(nil)
	for l, lw := range w.Layers {
		in, out := layerShapes[l][0], layerShapes[l][1]
		if len(lw.Weights) != out || len(lw.Biases) != out {
			return nil, ErrInvalidModel
		}
		layer := n.layers[l]
		copy(layer.b, lw.Biases)
		for o := 0; o < out; o++ {
			if len(lw.Weights[o]) != in {
				return nil, ErrInvalidModel
			}
			copy(layer.w[o], lw.Weights[o])
		}
	}
	n.trained = true
	n.version = w.Version
	return n, nil
}
