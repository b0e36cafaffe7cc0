package naming

import "context"

// Request carries the signals a naming service uses to label one group
// cluster: the items it agreed on most and the entity tags those items
// carry (opaque to the core; see spec.md §7 Non-goals).
type Request struct {
	RunID               string
	ClusterLocalID      int
	TopItemsByConsensus []string
	TopEntities         []string
}

// Response is the label a naming service assigns to a cluster.
type Response struct {
	Name        string
	Description string
}

// Hook is implemented by an external, possibly slow or unavailable,
// naming service. Caching of responses is the hook implementation's
// concern, not the core's.
type Hook interface {
	Name(ctx context.Context, req Request) (Response, error)
}

// NoopHook is the default Hook: it names nothing. Used when no external
// naming service is configured.
type NoopHook struct{}

func (NoopHook) Name(ctx context.Context, req Request) (Response, error) {
	return Response{}, nil
}
