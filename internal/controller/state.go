// Package controller holds the entity list controllers: each owns an
// in-memory mirror of a server-managed collection and mediates all
// mutations through the gateway. The server is the source of truth;
// every successful mutation is followed by a full list reload before
// the operation is considered complete.
//
// Controllers are driven from a single event loop. The Mutating state
// is an advisory signal for disabling UI controls, not a lock; nothing
// here prevents a second mutation from being issued while one is in
// flight.
package controller

// State is the lifecycle of an entity list controller.
type State int

const (
	StateLoading State = iota
	StateReady
	StateMutating
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateMutating:
		return "mutating"
	}
	return "unknown"
}
