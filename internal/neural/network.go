package neural

import (
	"errors"
	"math"
	"math/rand"

	"workpulse/internal/feature"
	"workpulse/internal/model"
)

var (
	ErrNotTrained   = errors.New("classifier has not been trained or loaded")
	ErrInvalidModel = errors.New("persisted classifier weights have an invalid shape")
)

const (
	hidden1 = 128
	hidden2 = 64
	hidden3 = 32
	outputs = 3

	learningRate = 1e-3
	adamBeta1    = 0.9
	adamBeta2    = 0.999
	adamEpsilon  = 1e-8
)

// Dropout rates per hidden layer, applied only during training
var dropoutRates = [3]float64{0.30, 0.30, 0.20}

// Probabilities is the softmax output over the three burnout classes
type Probabilities struct {
	Low      float64
	Moderate float64
	High     float64
}

// Tier applies the ordered override thresholds. This is intentionally not an
// arg-max: the asymmetric cascade over-flags serious risk (fewer false
// negatives at the cost of false positives) and the order must be preserved.
func (p Probabilities) Tier() model.RiskTier {
	switch {
	case p.High >= 0.7:
		return model.TierCritical
	case p.High >= 0.5:
		return model.TierHigh
	case p.Moderate >= 0.5:
		return model.TierModerate
	default:
		return model.TierLow
	}
}

// Model returns the probabilities in their persisted form
func (p Probabilities) Model() *model.RiskProbabilities {
	return &model.RiskProbabilities{Low: p.Low, Moderate: p.Moderate, High: p.High}
}

// Sample is one labeled training example. Label is the class index:
// 0 low, 1 moderate, 2 high.
type Sample struct {
	Input feature.Vector
	Label int
}

// dense is one fully connected layer. Weights are [out][in].
type dense struct {
	in, out int
	w       [][]float64
	b       []float64

	// Adam moment estimates
	mW, vW [][]float64
	mB, vB []float64
}

func newDense(in, out int, rng *rand.Rand) *dense {
	d := &dense{in: in, out: out}
	// He-normal init for the ReLU layers
	std := math.Sqrt(2.0 / float64(in))
	d.w = make([][]float64, out)
	d.mW = make([][]float64, out)
	d.vW = make([][]float64, out)
	for o := 0; o < out; o++ {
		d.w[o] = make([]float64, in)
		d.mW[o] = make([]float64, in)
		d.vW[o] = make([]float64, in)
		for i := 0; i < in; i++ {
			d.w[o][i] = rng.NormFloat64() * std
		}
	}
	d.b = make([]float64, out)
	d.mB = make([]float64, out)
	d.vB = make([]float64, out)
	return d
}

func (d *dense) forward(x []float64) []float64 {
	z := make([]float64, d.out)
	for o := 0; o < d.out; o++ {
		sum := d.b[o]
		row := d.w[o]
		for i := 0; i < d.in; i++ {
			sum += row[i] * x[i]
		}
		z[o] = sum
	}
	return z
}

// Network is the feed-forward burnout risk classifier:
// input → 128 → 64 → 32 → 3 with ReLU hidden activations and softmax output.
type Network struct {
	layers  [4]*dense
	trained bool
	version int
	step    int // Adam timestep
}

// New returns an untrained network with He-initialized weights
func New(rng *rand.Rand) *Network {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	n := &Network{}
	n.layers[0] = newDense(feature.Count, hidden1, rng)
	n.layers[1] = newDense(hidden1, hidden2, rng)
	n.layers[2] = newDense(hidden2, hidden3, rng)
	n.layers[3] = newDense(hidden3, outputs, rng)
	return n
}

// Trained reports whether the network holds trained parameters
func (n *Network) Trained() bool {
	return n.trained
}

// Version identifies the parameter set; retraining bumps it
func (n *Network) Version() int {
	return n.version
}

// Predict runs inference on a feature vector. Dropout is inactive; the
// network must have been trained or loaded first.
func (n *Network) Predict(v feature.Vector) (Probabilities, error) {
	if !n.trained {
		return Probabilities{}, ErrNotTrained
	}

	a := make([]float64, feature.Count)
	copy(a, v[:])
	for l := 0; l < 3; l++ {
		a = relu(n.layers[l].forward(a))
	}
	p := softmax(n.layers[3].forward(a))
	return Probabilities{Low: p[0], Moderate: p[1], High: p[2]}, nil
}

// Train fits the network on labeled samples with Adam and categorical
// cross-entropy, shuffling each epoch. Dropout masks are active on every
// hidden layer. Training always succeeds; quality depends on the data.
func (n *Network) Train(samples []Sample, epochs int, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	order := make([]int, len(samples))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, idx := range order {
			n.trainStep(&samples[idx], rng)
		}
	}

	n.trained = true
	n.version++
}

func (n *Network) trainStep(s *Sample, rng *rand.Rand) {
	// Forward pass, caching pre-activations, activations and dropout masks
	acts := make([][]float64, 5) // acts[0] = input, acts[l+1] = layer l output
	preacts := make([][]float64, 4)
	masks := make([][]float64, 3)

	in := make([]float64, feature.Count)
	copy(in, s.Input[:])
	acts[0] = in

	for l := 0; l < 3; l++ {
		z := n.layers[l].forward(acts[l])
		preacts[l] = z
		a := relu(z)
		masks[l] = dropoutMask(len(a), dropoutRates[l], rng)
		for i := range a {
			a[i] *= masks[l][i]
		}
		acts[l+1] = a
	}
	preacts[3] = n.layers[3].forward(acts[3])
	probs := softmax(preacts[3])

	// Backward pass. With softmax + cross-entropy the output delta is p - y.
	delta := make([]float64, outputs)
	copy(delta, probs)
	delta[s.Label] -= 1

	n.step++
	for l := 3; l >= 0; l-- {
		layer := n.layers[l]
		input := acts[l]

		var prevDelta []float64
		if l > 0 {
			prevDelta = make([]float64, layer.in)
			for i := 0; i < layer.in; i++ {
				sum := 0.0
				for o := 0; o < layer.out; o++ {
					sum += layer.w[o][i] * delta[o]
				}
				prevDelta[i] = sum
			}
		}

		for o := 0; o < layer.out; o++ {
			g := delta[o]
			layer.mB[o], layer.vB[o], layer.b[o] = adamUpdate(layer.mB[o], layer.vB[o], layer.b[o], g, n.step)
			for i := 0; i < layer.in; i++ {
				gw := g * input[i]
				layer.mW[o][i], layer.vW[o][i], layer.w[o][i] = adamUpdate(layer.mW[o][i], layer.vW[o][i], layer.w[o][i], gw, n.step)
			}
		}

		if l > 0 {
			// Gradient flows through the dropout mask and the ReLU
			for i := range prevDelta {
				prevDelta[i] *= masks[l-1][i]
				if preacts[l-1][i] <= 0 {
					prevDelta[i] = 0
				}
			}
			delta = prevDelta
		}
	}
}

func adamUpdate(m, v, p, g float64, step int) (float64, float64, float64) {
	m = adamBeta1*m + (1-adamBeta1)*g
	v = adamBeta2*v + (1-adamBeta2)*g*g
	mHat := m / (1 - math.Pow(adamBeta1, float64(step)))
	vHat := v / (1 - math.Pow(adamBeta2, float64(step)))
	p -= learningRate * mHat / (math.Sqrt(vHat) + adamEpsilon)
	return m, v, p
}

// dropoutMask returns an inverted-dropout mask: kept units are scaled by
// 1/(1-rate) so inference needs no rescaling.
func dropoutMask(n int, rate float64, rng *rand.Rand) []float64 {
	mask := make([]float64, n)
	keep := 1 - rate
	for i := range mask {
		if rng.Float64() < keep {
			mask[i] = 1 / keep
		}
	}
	return mask
}

func relu(z []float64) []float64 {
	a := make([]float64, len(z))
	for i, v := range z {
		if v > 0 {
			a[i] = v
		}
	}
	return a
}

func softmax(z []float64) []float64 {
	max := z[0]
	for _, v := range z[1:] {
		if v > max {
			max = v
		}
	}
	sum := 0.0
	p := make([]float64, len(z))
	for i, v := range z {
		p[i] = math.Exp(v - max)
		sum += p[i]
	}
	for i := range p {
		p[i] /= sum
	}
	return p
}
