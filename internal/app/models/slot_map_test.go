package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotMapReserve(t *testing.T) {
	t.Run("reserves a free slot", func(t *testing.T) {
		m := SlotMap{}

		ok := m.Reserve("10_5_2024", "10:00 am")

		assert.True(t, ok)
		assert.True(t, m.Has("10_5_2024", "10:00 am"))
		assert.Equal(t, []string{"10:00 am"}, m["10_5_2024"])
	})

	t.Run("rejects a taken slot", func(t *testing.T) {
		m := SlotMap{}

		assert.True(t, m.Reserve("10_5_2024", "10:00 am"))
		assert.False(t, m.Reserve("10_5_2024", "10:00 am"))
		assert.Len(t, m["10_5_2024"], 1)
	})

	t.Run("same time on another date is independent", func(t *testing.T) {
		m := SlotMap{}

		assert.True(t, m.Reserve("10_5_2024", "10:00 am"))
		assert.True(t, m.Reserve("11_5_2024", "10:00 am"))
	})

	t.Run("multiple times on one date accumulate", func(t *testing.T) {
		m := SlotMap{}

		assert.True(t, m.Reserve("10_5_2024", "10:00 am"))
		assert.True(t, m.Reserve("10_5_2024", "10:30 am"))
		assert.Equal(t, []string{"10:00 am", "10:30 am"}, m["10_5_2024"])
	})
}

func TestSlotMapRelease(t *testing.T) {
	t.Run("frees the slot for rebooking", func(t *testing.T) {
		m := SlotMap{}
		m.Reserve("10_5_2024", "10:00 am")

		m.Release("10_5_2024", "10:00 am")

		assert.False(t, m.Has("10_5_2024", "10:00 am"))
		assert.True(t, m.Reserve("10_5_2024", "10:00 am"))
	})

	t.Run("keeps other reservations on the date", func(t *testing.T) {
		m := SlotMap{}
		m.Reserve("10_5_2024", "10:00 am")
		m.Reserve("10_5_2024", "11:00 am")

		m.Release("10_5_2024", "10:00 am")

		assert.Equal(t, []string{"11:00 am"}, m["10_5_2024"])
	})

	t.Run("releasing an absent slot is a no-op", func(t *testing.T) {
		m := SlotMap{}
		m.Reserve("10_5_2024", "10:00 am")

		m.Release("10_5_2024", "11:00 am")
		m.Release("12_5_2024", "10:00 am")

		assert.Equal(t, []string{"10:00 am"}, m["10_5_2024"])
	})
}

func TestSlotMapHas(t *testing.T) {
	m := SlotMap{"10_5_2024": {"10:00 am", "11:00 am"}}

	assert.True(t, m.Has("10_5_2024", "11:00 am"))
	assert.False(t, m.Has("10_5_2024", "12:00 pm"))
	assert.False(t, m.Has("11_5_2024", "10:00 am"))
}
