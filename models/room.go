package models

// RoomDetailFields is the projection served by the single-room endpoint.
// "status" is included so that a status patch is visible on the detail view.
var RoomDetailFields = []string{
	"roomCategory",
	"description",
	"pricePerNight",
	"imageLg",
	"facilities",
	"roomSize",
	"availability",
	"specialOffers",
	"unavailableRoomInfo",
	"nextAvailableDate",
	"reasonForUnavailability",
	"reviews",
	"bookingDuration",
	"roomSummary",
	"maxPerson",
	"status",
}

// RoomStatusUpdate is the only room mutation clients may submit.
type RoomStatusUpdate struct {
	Status string `json:"status" bson:"status" binding:"required"`
}
