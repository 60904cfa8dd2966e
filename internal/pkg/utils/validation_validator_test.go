package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStructRegister(t *testing.T) {
	t.Run("accepts a strong password", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.Register{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "Sup3r$ecret",
		}))
	})

	t.Run("rejects a password without an uppercase letter", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&requests.Register{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "sup3r$ecret",
		}))
	})

	t.Run("rejects a password without a special character", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&requests.Register{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "Sup3rSecret",
		}))
	})

	t.Run("rejects a short password", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&requests.Register{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "Su$3r",
		}))
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&requests.Register{
			Name:     "Asha Rao",
			Email:    "not-an-email",
			Password: "Sup3r$ecret",
		}))
	})
}

func TestValidateStructBookAppointment(t *testing.T) {
	valid := func() *requests.BookAppointment {
		return &requests.BookAppointment{
			DocID:    "doctor-1",
			SlotDate: "10_5_2024",
			SlotTime: "10:00 am",
		}
	}

	t.Run("accepts well formed slot keys", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid()))
	})

	t.Run("accepts a 24 hour slot time", func(t *testing.T) {
		request := valid()
		request.SlotTime = "14:30"
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("rejects a slot date without a four digit year", func(t *testing.T) {
		request := valid()
		request.SlotDate = "10_5_24"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects a dashed slot date", func(t *testing.T) {
		request := valid()
		request.SlotDate = "10-5-2024"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects a slot time without minutes", func(t *testing.T) {
		request := valid()
		request.SlotTime = "10 am"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects a missing doctor id", func(t *testing.T) {
		request := valid()
		request.DocID = ""
		assert.Error(t, ValidateStruct(request))
	})
}
