package domain

import (
	"errors"
	"time"
)

// ClientStatus is the coaching lifecycle state of a client.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// Valid reports whether s is a known client status.
func (s ClientStatus) Valid() bool {
	return s == ClientActive || s == ClientInactive
}

// Gender of a coached client, used for training and nutrition baselines.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidStatus  = errors.New("invalid client status")
)

// Client is a coached customer of the business, distinct from the User that
// logs into the platform.
type Client struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	Name      string       `json:"name" bson:"name"`
	Email     string       `json:"email" bson:"email"`
	Phone     string       `json:"phone" bson:"phone"`
	BirthDate time.Time    `json:"birth_date" bson:"birth_date"`
	Gender    Gender       `json:"gender" bson:"gender"`
	Modality  string       `json:"modality" bson:"modality"`
	Goal      string       `json:"goal" bson:"goal"`
	Status    ClientStatus `json:"status" bson:"status"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}
