package models

// UpdateStatus tracks the progress of saving a timer configuration.
type UpdateStatus string

const (
	UpdateStatusInit     UpdateStatus = "init"
	UpdateStatusUpdating UpdateStatus = "updating"
	UpdateStatusSuccess  UpdateStatus = "success"
	UpdateStatusError    UpdateStatus = "error"
)
