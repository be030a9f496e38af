// Package fallback implements the remote-or-local-substitute pattern shared
// by the advisory integrations.
package fallback

import (
	"context"

	"go.uber.org/zap"
)

// Capability is one remote operation with a deterministic local substitute.
type Capability[T any] struct {
	// Name labels log lines for this capability.
	Name string
	// Configured reports whether credentials for the remote call are present.
	Configured bool
	// Remote performs the remote call. Attempted at most once per Resolve.
	Remote func(ctx context.Context) (T, error)
	// Local produces the substitute result. Must not fail.
	Local func() T
}

// Resolve runs the capability: missing credentials or any remote failure
// degrade to the local substitute, so the caller never sees an error.
func Resolve[T any](ctx context.Context, log *zap.Logger, cap Capability[T]) T {
	if !cap.Configured {
		return cap.Local()
	}

	result, err := cap.Remote(ctx)
	if err != nil {
		if log != nil {
			log.Warn("remote call failed, using local substitute",
				zap.String("capability", cap.Name),
				zap.Error(err),
			)
		}
		return cap.Local()
	}
	return result
}
