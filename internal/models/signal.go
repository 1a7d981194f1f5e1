package models

import "time"

// Signal states.
const (
	SignalStateRed    = "Red"
	SignalStateYellow = "Yellow"
	SignalStateGreen  = "Green"
)

// Signal modes.
const (
	SignalModeAuto        = "Auto"
	SignalModeManual      = "Manual"
	SignalModeMaintenance = "Maintenance"
)

// SignalTiming holds phase durations in seconds.
type SignalTiming struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

// DefaultSignalTiming is applied when a signal is created without timing.
func DefaultSignalTiming() SignalTiming {
	return SignalTiming{Red: 30, Yellow: 5, Green: 25}
}

// Signal is a controllable traffic signal. LastUpdated is refreshed on
// every mutation.
type Signal struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Location     string       `json:"location"`
	CurrentState string       `json:"currentState"`
	Mode         string       `json:"mode"`
	Timing       SignalTiming `json:"timing"`
	LastUpdated  time.Time    `json:"lastUpdated"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// CreateSignal is the payload for creating a signal. State defaults to
// Green, mode to Auto, timing to DefaultSignalTiming when omitted.
type CreateSignal struct {
	Name     string
	Location string
	Timing   *SignalTiming
}

// SignalUpdate carries the optional fields of a partial signal update.
type SignalUpdate struct {
	Name         *string
	Location     *string
	CurrentState *string
	Mode         *string
	Timing       *SignalTiming
}
