package requests

import "medibook-service/internal/app/models"

type UpdateProfile struct {
	Name    string         `json:"name" validate:"required,min=2,max=100"`
	Phone   string         `json:"phone" validate:"required,phone_number"`
	Gender  string         `json:"gender" validate:"required,oneof=male female other"`
	Dob     string         `json:"dob" validate:"required"`
	Address models.Address `json:"address"`

	// ProfilePicture carries an optional base64 data-URI image; the
	// decoded bytes and extension are filled in by the controller after
	// validation.
	ProfilePicture          string `json:"profilePicture,omitempty" validate:"omitempty"`
	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}
