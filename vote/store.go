package vote

import (
	"context"
	"time"
)

// Store is the read-only Vote Store external collaborator (spec.md C1).
// The core never writes through this interface.
type Store interface {
	// VotesInWindow returns every vote with Timestamp in (now-window, now].
	// Implementations should return a read-committed snapshot; if the
	// store mutates underneath, the Run uses whatever it observed
	// (spec.md §5).
	VotesInWindow(ctx context.Context, now time.Time, window time.Duration) ([]Vote, error)

	// Claims returns the current session→registered claim mapping used
	// for identity reconciliation (spec.md §4.1 step 2).
	Claims(ctx context.Context) (map[string]string, error)
}
