package naming

import (
	"context"

	"go.uber.org/zap"
)

// OnNamed is called with a hook's successful response, off the calling
// goroutine. Implementations typically attach the result to a Cluster
// row; they must tolerate being called after the triggering Run has
// already completed.
type OnNamed func(req Request, resp Response)

// Invoke dispatches req to hook on its own goroutine and never returns an
// error to the caller: a failing or panicking hook is logged and
// dropped, never propagated to the Run that triggered it (spec.md §6.2,
// §9 "name-caching hook").
func Invoke(ctx context.Context, hook Hook, logger *zap.Logger, req Request, onNamed OnNamed) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("naming hook panicked",
					zap.Any("recover", r),
					zap.Int("cluster", req.ClusterLocalID))
			}
		}()

		resp, err := hook.Name(ctx, req)
		if err != nil {
			logger.Warn("naming hook failed",
				zap.Error(err),
				zap.Int("cluster", req.ClusterLocalID))
			return
		}
		onNamed(req, resp)
	}()
}
