package voter

// Claims maps a session id to the registered identity that claimed it.
// It is consumed, never mutated, by Reconcile.
type Claims map[string]Identity

// Reconcile resolves v to the registered identity that has claimed it,
// if any. Only Session identities are looked up; a Registered identity
// is returned unchanged. This must run before vote matrix construction
// (spec.md §4.1 step 2, §9).
func Reconcile(v Identity, claims Claims) Identity {
	if v.Kind != Session {
		return v
	}
	if registered, ok := claims[v.ID]; ok {
		return registered
	}
	return v
}
