package valueobjects

import (
	"fmt"
	"sync/atomic"
)

const nodeIDStem = "node_"

// Prefix used for website nodes spawned from a search result.
const ResultWebsitePrefix = "rw"

// IDGenerator hands out node ids from a counter that only moves forward.
// A graph owns one generator; ids are never handed out twice.
type IDGenerator struct {
	next atomic.Uint64
}

// NewIDGenerator creates a generator starting at node_0
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NewIDGeneratorFrom creates a generator whose first id uses start
func NewIDGeneratorFrom(start uint64) *IDGenerator {
	g := &IDGenerator{}
	g.next.Store(start)
	return g
}

// Next returns the next bare id (node_0, node_1, ...)
func (g *IDGenerator) Next() NodeID {
	return g.NextWithPrefix("")
}

// NextWithPrefix returns the next id with a debugging prefix, e.g. gnode_3
func (g *IDGenerator) NextWithPrefix(prefix string) NodeID {
	n := g.next.Add(1) - 1
	return NodeID{value: fmt.Sprintf("%s%s%d", prefix, nodeIDStem, n)}
}

// Peek returns the counter value the next id will use
func (g *IDGenerator) Peek() uint64 {
	return g.next.Load()
}
