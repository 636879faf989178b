package main

import (
	"fmt"
	"math/rand"
	"time"

	"greenvilla/models"
)

type roomCategory struct {
	Name       string
	BasePrice  float64
	MaxPerson  int
	RoomSize   string
	Facilities []string
	ImageLg    string
}

var categories = []roomCategory{
	{
		Name:       "Standard",
		BasePrice:  80,
		MaxPerson:  2,
		RoomSize:   "24 sqm",
		Facilities: []string{"Wi-Fi", "Air conditioning", "Smart TV"},
		ImageLg:    "https://images.greenvilla.test/rooms/standard-lg.jpg",
	},
	{
		Name:       "Deluxe",
		BasePrice:  120,
		MaxPerson:  3,
		RoomSize:   "32 sqm",
		Facilities: []string{"Wi-Fi", "Air conditioning", "Smart TV", "Mini bar", "Balcony"},
		ImageLg:    "https://images.greenvilla.test/rooms/deluxe-lg.jpg",
	},
	{
		Name:       "Family Suite",
		BasePrice:  190,
		MaxPerson:  5,
		RoomSize:   "55 sqm",
		Facilities: []string{"Wi-Fi", "Air conditioning", "Kitchenette", "Two bedrooms", "Garden view"},
		ImageLg:    "https://images.greenvilla.test/rooms/family-lg.jpg",
	},
	{
		Name:       "Villa",
		BasePrice:  320,
		MaxPerson:  6,
		RoomSize:   "90 sqm",
		Facilities: []string{"Wi-Fi", "Private pool", "Kitchen", "Butler service", "Ocean view"},
		ImageLg:    "https://images.greenvilla.test/rooms/villa-lg.jpg",
	},
}

var unavailableReasons = []string{"Renovation", "Deep cleaning", "Private event"}

// buildRooms generates perCategory sample rooms for every category. Roughly
// one room in five is generated as unavailable with a reason and a next
// available date.
func buildRooms(rng *rand.Rand, perCategory int, today time.Time) []models.Document {
	rooms := make([]models.Document, 0, len(categories)*perCategory)
	counter := 1

	for _, cat := range categories {
		for i := 0; i < perCategory; i++ {
			price := cat.BasePrice + float64(rng.Intn(4))*10
			available := rng.Intn(5) != 0

			room := models.Document{
				"roomCategory":    cat.Name,
				"description":     fmt.Sprintf("%s room %d at Green Villa, sleeps up to %d guests.", cat.Name, counter, cat.MaxPerson),
				"pricePerNight":   price,
				"imageLg":         cat.ImageLg,
				"facilities":      cat.Facilities,
				"roomSize":        cat.RoomSize,
				"availability":    available,
				"specialOffers":   specialOffer(rng),
				"reviews":         []models.Document{},
				"bookingDuration": fmt.Sprintf("%d nights minimum", 1+rng.Intn(3)),
				"roomSummary":     fmt.Sprintf("%s, %s, up to %d guests", cat.Name, cat.RoomSize, cat.MaxPerson),
				"maxPerson":       cat.MaxPerson,
				"status":          "available",
			}

			if !available {
				reason := unavailableReasons[rng.Intn(len(unavailableReasons))]
				room["status"] = "unavailable"
				room["unavailableRoomInfo"] = fmt.Sprintf("Closed for %s", reason)
				room["reasonForUnavailability"] = reason
				room["nextAvailableDate"] = today.AddDate(0, 0, 3+rng.Intn(14)).Format("2006-01-02")
			} else {
				room["unavailableRoomInfo"] = ""
				room["reasonForUnavailability"] = ""
				room["nextAvailableDate"] = today.Format("2006-01-02")
			}

			rooms = append(rooms, room)
			counter++
		}
	}
	return rooms
}

func specialOffer(rng *rand.Rand) string {
	switch rng.Intn(3) {
	case 0:
		return "10% off stays of 3 nights or more"
	case 1:
		return "Free breakfast for two"
	default:
		return ""
	}
}
