package engine

import (
	"math"
	"math/bits"
	"math/rand"

	"chess-ai/core"

	"github.com/rs/zerolog"
)

// Network layer sizes. The input is a 768-element one-hot encoding:
// 12 piece planes (white pawn..king, black pawn..king) times 64 squares.
const (
	InputSize = 768
	L1Size    = 512
	L2Size    = 256
	L3Size    = 128
	L4Size    = 64
)

// layer is one fully connected layer with row-major weights (out x in).
type layer struct {
	in, out int
	weights []float32
	bias    []float32
}

func newLayer(in, out int) layer {
	return layer{
		in:      in,
		out:     out,
		weights: make([]float32, in*out),
		bias:    make([]float32, out),
	}
}

// forward computes dst = W*src + b, applying ReLU unless this is the last layer.
func (l *layer) forward(src, dst []float32, relu bool) {
	for o := 0; o < l.out; o++ {
		sum := l.bias[o]
		row := l.weights[o*l.in : (o+1)*l.in]
		for i, w := range row {
			sum += w * src[i]
		}
		if relu && sum < 0 {
			sum = 0
		}
		dst[o] = sum
	}
}

// Network is a feed-forward position evaluator: 768 inputs, four ReLU
// hidden layers (512/256/128/64) and a single tanh output scaled to ±1000.
type Network struct {
	layers [5]layer
	// scratch buffers reused across forward passes
	buf [5][]float32
}

func NewNetwork() *Network {
	n := &Network{}
	sizes := [6]int{InputSize, L1Size, L2Size, L3Size, L4Size, 1}
	for i := 0; i < 5; i++ {
		n.layers[i] = newLayer(sizes[i], sizes[i+1])
		n.buf[i] = make([]float32, sizes[i+1])
	}
	return n
}

// InitRandom fills all weights and biases with small uniform values from a
// fixed seed. Used when no trained weights are available.
func (n *Network) InitRandom(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range n.layers {
		l := &n.layers[i]
		for j := range l.weights {
			l.weights[j] = float32(rng.Float64()*0.2 - 0.1)
		}
		for j := range l.bias {
			l.bias[j] = float32(rng.Float64()*0.2 - 0.1)
		}
	}
}

// Forward runs the network over one feature vector and returns the scaled
// output in (-1000, 1000).
func (n *Network) Forward(features []float32) float32 {
	src := features
	for i := 0; i < 5; i++ {
		n.layers[i].forward(src, n.buf[i], i < 4)
		src = n.buf[i]
	}
	return float32(math.Tanh(float64(src[0]))) * 1000
}

// EncodeFeatures writes the one-hot encoding of the position into dst,
// which must have length InputSize. Feature index = plane*64 + square,
// planes ordered white pawn..king then black pawn..king.
func EncodeFeatures(b *core.Board, dst []float32) {
	for i := range dst {
		dst[i] = 0
	}
	bb := b.ToBitboard()
	for plane := 0; plane < 12; plane++ {
		mask := bb.Planes[plane]
		for mask != 0 {
			sq := bits.TrailingZeros64(mask)
			dst[plane*64+sq] = 1
			mask &= mask - 1
		}
	}
}

// Learned is the network-backed Evaluator.
type Learned struct {
	net      *Network
	features []float32
}

// NewLearned builds the network evaluator, loading weights from path.
// A missing or malformed weights file is not fatal: the engine logs a
// warning and falls back to fixed-seed random initialization, which still
// yields legal (if weak) play.
func NewLearned(path string, log zerolog.Logger) *Learned {
	net := NewNetwork()
	if err := net.LoadWeights(path); err != nil {
		log.Warn().Err(err).Str("path", path).
			Msg("could not load network weights, using random initialization")
		net.InitRandom(0xC0DE)
	} else {
		log.Info().Str("path", path).Msg("loaded network weights")
	}
	return &Learned{net: net, features: make([]float32, InputSize)}
}

// NewLearnedFromNetwork wraps an existing network, for tooling and tests.
func NewLearnedFromNetwork(net *Network) *Learned {
	return &Learned{net: net, features: make([]float32, InputSize)}
}

func (e *Learned) Score(b *core.Board) int {
	EncodeFeatures(b, e.features)
	v := e.net.Forward(e.features)
	if b.SideToMove() == core.Black {
		v = -v
	}
	return int(v)
}
