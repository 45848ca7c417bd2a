package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Public ids for squads, transfers, auctions and bids are opaque
// 32-char hex strings; nothing orders or parses them.
const idByteLength = 16

// Generator hands out new public ids. Services depend on the
// interface, not the random source.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, idByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random id bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
