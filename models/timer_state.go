package models

// TimerState is a point-in-time view of a timer session for presentation.
type TimerState struct {
	CurrentEntry *Entry
	Err          error
	Realtime     bool
	Connection   ConnectionState
}
