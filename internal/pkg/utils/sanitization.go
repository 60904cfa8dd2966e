package utils

import (
	"strings"

	"medibook-service/internal/pkg/dto/requests"
)

func SanitizeRegisterRequest(request *requests.Register) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeUpdateProfileRequest(request *requests.UpdateProfile) {
	request.Name = strings.TrimSpace(request.Name)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.Dob = strings.TrimSpace(request.Dob)
	request.Address.Line1 = strings.TrimSpace(request.Address.Line1)
	request.Address.Line2 = strings.TrimSpace(request.Address.Line2)
}

func SanitizeBookAppointmentRequest(request *requests.BookAppointment) {
	request.DocID = strings.TrimSpace(request.DocID)
	request.SlotDate = strings.TrimSpace(request.SlotDate)
	request.SlotTime = strings.TrimSpace(request.SlotTime)
}
