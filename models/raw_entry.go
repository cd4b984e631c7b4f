package models

// RawTimeEntry is the provider wire shape of a time entry, used both in REST
// responses and in push frames. Pointer fields let the translator tell an
// absent field apart from a zero value.
type RawTimeEntry struct {
	ID          *int64  `json:"id"`
	Description *string `json:"description"`
	Start       *string `json:"start"`
	Duration    *int64  `json:"duration"`
}
