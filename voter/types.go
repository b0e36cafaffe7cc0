package voter

import "fmt"

// Kind distinguishes a registered account from an anonymous session.
type Kind uint8

const (
	// Registered identifies a durable, authenticated account.
	Registered Kind = iota
	// Session identifies an anonymous, possibly-rotating session.
	Session
)

// String renders Kind for logging and error messages.
func (k Kind) String() string {
	switch k {
	case Registered:
		return "registered"
	case Session:
		return "session"
	default:
		return "unknown"
	}
}

// Identity is a tagged (kind, id) pair that is stable within its kind
// for the duration of one Run. Two Identity values with different Kind
// are never equal even if ID matches by coincidence.
type Identity struct {
	Kind Kind
	ID   string
}

// New constructs an Identity.
func New(kind Kind, id string) Identity {
	return Identity{Kind: kind, ID: id}
}

// Key returns a string uniquely identifying this Identity, suitable for
// use as a map key or log field; it is not meant to be parsed back.
func (v Identity) Key() string {
	return fmt.Sprintf("%s:%s", v.Kind, v.ID)
}

// String implements fmt.Stringer.
func (v Identity) String() string { return v.Key() }
