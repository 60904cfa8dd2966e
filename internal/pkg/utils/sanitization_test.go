package utils

import (
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterRequest(t *testing.T) {
	request := &requests.Register{
		Name:  "  Asha Rao  ",
		Email: "  Asha@Example.COM ",
	}

	SanitizeRegisterRequest(request)

	assert.Equal(t, "Asha Rao", request.Name)
	assert.Equal(t, "asha@example.com", request.Email)
}

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{Email: " Asha@Example.com "}

	SanitizeLoginRequest(request)

	assert.Equal(t, "asha@example.com", request.Email)
}

func TestSanitizeUpdateProfileRequest(t *testing.T) {
	request := &requests.UpdateProfile{
		Name:   " Asha Rao ",
		Phone:  " +911234567890 ",
		Gender: " Female ",
		Dob:    " 1990-01-02 ",
		Address: models.Address{
			Line1: " 12 Clinic Road ",
			Line2: " Block B ",
		},
	}

	SanitizeUpdateProfileRequest(request)

	assert.Equal(t, "Asha Rao", request.Name)
	assert.Equal(t, "+911234567890", request.Phone)
	assert.Equal(t, "female", request.Gender)
	assert.Equal(t, "1990-01-02", request.Dob)
	assert.Equal(t, "12 Clinic Road", request.Address.Line1)
	assert.Equal(t, "Block B", request.Address.Line2)
}

func TestSanitizeBookAppointmentRequest(t *testing.T) {
	request := &requests.BookAppointment{
		DocID:    " doctor-1 ",
		SlotDate: " 10_5_2024 ",
		SlotTime: " 10:00 am ",
	}

	SanitizeBookAppointmentRequest(request)

	assert.Equal(t, "doctor-1", request.DocID)
	assert.Equal(t, "10_5_2024", request.SlotDate)
	assert.Equal(t, "10:00 am", request.SlotTime)
}
