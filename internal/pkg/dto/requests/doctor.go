package requests

import "medibook-service/internal/app/models"

type UpdateDoctorProfile struct {
	Fees      float64        `json:"fees" validate:"required,gt=0"`
	Address   models.Address `json:"address"`
	Available bool           `json:"available"`
	About     string         `json:"about,omitempty" validate:"omitempty,max=2000"`
}
