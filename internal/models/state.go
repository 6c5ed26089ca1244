package models

// State is the conversation FSM position for one chat. A chat starts in
// StateAwaitingLabel and returns there after every datetime capture
// attempt, successful or not.
type State int

const (
	StateAwaitingLabel State = iota
	StateAwaitingDateTime
)
