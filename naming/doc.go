// Package naming defines the optional cluster-naming callout of
// spec.md §6.2: after a Run completes, the coordinator may hand each
// group cluster's top items and entities to an external naming service
// and attach the returned name/description. The hook is fire-and-forget:
// it must never block or fail the Run it was triggered from.
package naming
