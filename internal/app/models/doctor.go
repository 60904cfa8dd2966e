package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type Doctor struct {
	ID          string  `bson:"_id,omitempty"`
	Name        string  `bson:"name"`
	Email       string  `bson:"email"`
	Password    string  `bson:"password"`
	Image       string  `bson:"image,omitempty"`
	Speciality  string  `bson:"speciality"`
	Degree      string  `bson:"degree"`
	Experience  string  `bson:"experience"`
	About       string  `bson:"about"`
	Fees        float64 `bson:"fees"`
	Address     Address `bson:"address"`
	Available   bool    `bson:"available"`
	SlotsBooked SlotMap `bson:"slotsBooked"`
	TimeModel   `bson:",inline"`
}

// ConvertToBsonM returns the profile fields a doctor may edit as an
// update document. The reservation map is never written through here.
func (d *Doctor) ConvertToBsonM() bson.M {
	return bson.M{
		"fees":      d.Fees,
		"address":   d.Address,
		"available": d.Available,
		"about":     d.About,
		"updatedAt": time.Now(),
	}
}

// Snapshot returns the denormalized copy embedded into an appointment.
// The reservation map is deliberately excluded: it is mutable state and
// has no meaning inside a point-in-time copy.
func (d *Doctor) Snapshot() DoctorSnapshot {
	return DoctorSnapshot{
		ID:         d.ID,
		Name:       d.Name,
		Image:      d.Image,
		Speciality: d.Speciality,
		Degree:     d.Degree,
		Fees:       d.Fees,
		Address:    d.Address,
	}
}

type DoctorSnapshot struct {
	ID         string  `json:"id" bson:"id"`
	Name       string  `json:"name" bson:"name"`
	Image      string  `json:"image,omitempty" bson:"image,omitempty"`
	Speciality string  `json:"speciality" bson:"speciality"`
	Degree     string  `json:"degree" bson:"degree"`
	Fees       float64 `json:"fees" bson:"fees"`
	Address    Address `json:"address" bson:"address"`
}
