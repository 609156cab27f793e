package dto

import "time"

const (
	EventRefresh = "refresh"
	EventTick    = "tick"
	EventLogout  = "logout"
)

// EventMessage is one frame pushed on the session event stream
type EventMessage struct {
	Type             string            `json:"type"`
	Account          *SnapshotResponse `json:"account,omitempty"`
	RemainingSeconds *int              `json:"remaining_seconds,omitempty"`
	Timer            string            `json:"timer,omitempty"`
	Reason           string            `json:"reason,omitempty"`
	At               time.Time         `json:"at"`
}
