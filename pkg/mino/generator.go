package mino

import (
	"math/rand"
	"sync"
)

// Generator hands out random pieces from a seeded source so that a game can
// be replayed from its seed.
type Generator struct {
	Seed int64

	randomizer *rand.Rand
	taken      int

	*sync.Mutex
}

func NewGenerator(seed int64) *Generator {
	return &Generator{Seed: seed, randomizer: rand.New(rand.NewSource(seed)), Mutex: new(sync.Mutex)}
}

// Take returns a new piece, each kind with equal probability.
func (g *Generator) Take() *Piece {
	g.Lock()
	defer g.Unlock()

	g.taken++
	return RandomPiece(g.randomizer)
}

// Taken is the number of pieces generated so far.
func (g *Generator) Taken() int {
	g.Lock()
	defer g.Unlock()

	return g.taken
}
