package workload

import (
	"fmt"

	"github.com/rhyrak/form1-scheduler/pkg/model"
)

// StreamIDGenerator produces deterministic stream identifiers (SPEC_FULL.md
// §12 item 5): the source's random uuid4 suffix would break §8's
// byte-identical determinism invariant, so IDs are instead a counter over
// the (subject, stream_type, instructor) triple, scoped to one parse.
type StreamIDGenerator struct {
	counts map[string]int
}

// NewStreamIDGenerator returns a generator with an empty counter table.
func NewStreamIDGenerator() *StreamIDGenerator {
	return &StreamIDGenerator{counts: make(map[string]int)}
}

// Next returns the next deterministic ID for the given triple and advances
// its counter. Stable under file order because callers invoke it in the
// same row order the sheet was scanned in.
func (g *StreamIDGenerator) Next(subject string, streamType model.StreamType, instructor string) string {
	key := subject + "\x00" + streamType.String() + "\x00" + instructor
	g.counts[key]++
	return fmt.Sprintf("%s/%s/%s#%d", subject, streamType, instructor, g.counts[key])
}
