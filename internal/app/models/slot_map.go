package models

// SlotMap is a doctor's reservation index: date key to the list of time
// keys already booked on that date. Both keys are opaque strings supplied
// by the client (the web frontend uses "D_M_YYYY" and "HH:MM am/pm").
//
// Invariant: a time key appears at most once per date. Reserve enforces
// it in memory and the repository enforces it again with a conditional
// update, so Release may safely drop every matching entry.
type SlotMap map[string][]string

// Has reports whether the given slot is already reserved.
func (m SlotMap) Has(slotDate, slotTime string) bool {
	for _, booked := range m[slotDate] {
		if booked == slotTime {
			return true
		}
	}
	return false
}

// Reserve appends the slot to the date's sequence, creating the sequence
// when the date key is new. It reports false when the slot is taken.
func (m SlotMap) Reserve(slotDate, slotTime string) bool {
	if m.Has(slotDate, slotTime) {
		return false
	}
	m[slotDate] = append(m[slotDate], slotTime)
	return true
}

// Release removes every occurrence of the slot time from the date's
// sequence. Releasing a slot that is not reserved is a no-op.
func (m SlotMap) Release(slotDate, slotTime string) {
	booked, found := m[slotDate]
	if !found {
		return
	}
	remaining := booked[:0]
	for _, t := range booked {
		if t != slotTime {
			remaining = append(remaining, t)
		}
	}
	m[slotDate] = remaining
}
