package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexEmail                        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexPhoneNumberGeneral           = `^\+?[0-9]{7,15}$`

	// Slot keys are opaque strings on the wire; these only reject garbage,
	// the booking path never parses them.
	RegexSlotDateKey = `^[0-9]{1,2}_[0-9]{1,2}_[0-9]{4}$`
	RegexSlotTimeKey = `^[0-9]{1,2}:[0-9]{2}( ?(AM|PM|am|pm))?$`
)
