package state

// Step is the position of a user inside the expense entry conversation.
type Step int

const (
	Idle Step = iota
	AwaitingAmount
	AwaitingCategory
	AwaitingDescription
)

// State is one user's conversation state. PendingAmount is only
// meaningful from AwaitingCategory on, PendingCategory only from
// AwaitingDescription on. The zero value is the Idle state.
type State struct {
	Step            Step
	PendingAmount   float64
	PendingCategory string
}

// Storage is the backing store of conversation states. The in-memory
// implementation loses all state on restart, which resets every user
// to Idle; callers must treat that as normal.
type Storage interface {
	Get(userID string) (State, bool)
	Set(userID string, st State)
}
