package remove_availability

// RemoveSlotRequest HTTP request model
type RemoveSlotRequest struct {
	StartAt string `json:"startAt" validate:"required"`
}
