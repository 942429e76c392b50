package add_availability

// AddSlotRequest HTTP request model
type AddSlotRequest struct {
	StartAt string `json:"startAt" validate:"required"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	StartAt string `json:"startAt"`
}
