package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

const (
	MongoCollectionPatients     = "patients"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
)

const (
	// RedisKeySession maps a session id to its serialized session payload.
	RedisKeySession = "session:%s"

	// RedisKeyDoctorBookingLock namespaces the per-doctor booking lock.
	RedisKeyDoctorBookingLock = "booking-lock:doctor:%s"

	DoctorBookingLockTTLSeconds = 10
)

const (
	NotificationEventAppointmentBooked    = "appointment.booked"
	NotificationEventAppointmentCancelled = "appointment.cancelled"
)

const (
	ImageAllowedProfilePictureFormats = ".jpg,.jpeg,.png"
)
