package models

// BookingInput validates the known fields of a booking payload. The payload
// itself is stored as a Document so that extra client fields are kept.
type BookingInput struct {
	Email        string `json:"email" binding:"omitempty,email"`
	CheckingDate string `json:"checkingDate"`
	CheckOutdate string `json:"checkOutdate"`
}

// BookingDatesUpdate is the whitelist applied by a booking update; every
// other field in the request body is ignored.
type BookingDatesUpdate struct {
	CheckingDate string `json:"checkingDate" bson:"checkingDate" binding:"required"`
	CheckOutdate string `json:"checkOutdate" bson:"checkOutdate" binding:"required"`
}
