package testutil

// DefaultRunID is used when a scenario does not pin its own run ID.
const DefaultRunID = "run-default"

// FixedRunIDGenerator returns the same run ID on every call, which keeps
// golden traces byte-identical between runs.
//
// It satisfies trace.RunIDGenerator and is safe for concurrent use.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator returns a generator for id, or DefaultRunID when
// id is empty.
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = DefaultRunID
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run ID.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}
