package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Address struct {
	Line1 string `json:"line1" bson:"line1"`
	Line2 string `json:"line2,omitempty" bson:"line2,omitempty"`
}

type Patient struct {
	ID        string  `bson:"_id,omitempty"`
	Name      string  `bson:"name"`
	Email     string  `bson:"email"`
	Password  string  `bson:"password"`
	Image     string  `bson:"image,omitempty"`
	Phone     string  `bson:"phone,omitempty"`
	Gender    string  `bson:"gender,omitempty"`
	Dob       string  `bson:"dob,omitempty"`
	Address   Address `bson:"address,omitempty"`
	TimeModel `bson:",inline"`
}

// ConvertToBsonM returns the mutable fields as an update document.
func (p *Patient) ConvertToBsonM() bson.M {
	return bson.M{
		"name":      p.Name,
		"image":     p.Image,
		"phone":     p.Phone,
		"gender":    p.Gender,
		"dob":       p.Dob,
		"address":   p.Address,
		"updatedAt": time.Now(),
	}
}

// Snapshot returns the denormalized copy embedded into an appointment at
// booking time. The password never leaves the account document.
func (p *Patient) Snapshot() PatientSnapshot {
	return PatientSnapshot{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Image:   p.Image,
		Phone:   p.Phone,
		Gender:  p.Gender,
		Dob:     p.Dob,
		Address: p.Address,
	}
}

type PatientSnapshot struct {
	ID      string  `json:"id" bson:"id"`
	Name    string  `json:"name" bson:"name"`
	Email   string  `json:"email" bson:"email"`
	Image   string  `json:"image,omitempty" bson:"image,omitempty"`
	Phone   string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Gender  string  `json:"gender,omitempty" bson:"gender,omitempty"`
	Dob     string  `json:"dob,omitempty" bson:"dob,omitempty"`
	Address Address `json:"address,omitempty" bson:"address,omitempty"`
}
