package handler

import "time"

type clientRequest struct {
	Name      string    `json:"name"       validate:"required,max=100"`
	Email     string    `json:"email"      validate:"required,email"`
	Phone     string    `json:"phone"      validate:"required,max=20"`
	BirthDate time.Time `json:"birth_date" validate:"required"`
	Gender    string    `json:"gender"     validate:"required,oneof=male female"`
	Modality  string    `json:"modality"   validate:"required,max=100"`
	Goal      string    `json:"goal"       validate:"required,max=255"`
	Status    string    `json:"status"     validate:"omitempty,oneof=active inactive"`
}

type clientStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}
