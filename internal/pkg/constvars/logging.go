package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingRequestKey            = "request"
	LoggingResponseKey           = "response"
	LoggingDataKey               = "data"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingPatientIDKey          = "patient_id"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingOrderIDKey            = "order_id"
	LoggingSlotDateKey           = "slot_date"
	LoggingSlotTimeKey           = "slot_time"
	LoggingRedisKey              = "redis_key"
	LoggingQueueKey              = "queue"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
)
