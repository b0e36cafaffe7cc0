package voter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconcileClaimedSession(t *testing.T) {
	claims := Claims{"sess-1": New(Registered, "user-42")}
	resolved := Reconcile(New(Session, "sess-1"), claims)
	require.Equal(t, New(Registered, "user-42"), resolved)
}

func TestReconcileUnclaimedSession(t *testing.T) {
	claims := Claims{}
	resolved := Reconcile(New(Session, "sess-2"), claims)
	require.Equal(t, New(Session, "sess-2"), resolved)
}

func TestReconcileRegisteredPassesThrough(t *testing.T) {
	claims := Claims{"sess-1": New(Registered, "user-1")}
	resolved := Reconcile(New(Registered, "user-99"), claims)
	require.Equal(t, New(Registered, "user-99"), resolved)
}

func TestIdentityKeyDistinguishesKind(t *testing.T) {
	a := New(Registered, "42")
	b := New(Session, "42")
	require.NotEqual(t, a.Key(), b.Key())
}
