package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"phone_number": "must be a valid phone number",
	"slot_date": "must be a valid slot date key",
	"slot_time": "must be a valid slot time key",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}
