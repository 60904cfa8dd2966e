package constvars

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUserNotFound                  = "user does not exist"
	ErrClientDoctorNotFound                = "doctor does not exist"
	ErrClientAppointmentNotFound           = "appointment does not exist"
	ErrClientDoctorNotAvailable            = "doctor not available"
	ErrClientSlotNotAvailable              = "slot not available"
	ErrClientAppointmentAlreadyCancelled   = "appointment already cancelled"
	ErrClientAppointmentAlreadyPaid        = "appointment already paid"
	ErrClientCancelledAppointmentPayment   = "cannot pay for a cancelled appointment"
	ErrClientInvalidImageFormat            = "invalid image, please use jpg, jpeg or png with a valid size"
	ErrClientPaymentGatewayUnavailable     = "payment service is unavailable, please try again later"
)

// Error messages for developers
const (
	ErrDevValidationFailed      = "input validation failed"
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON     = "failed to marshal value to JSON"
	ErrDevImageValidationFailed = "image validation failed"

	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded while processing request"

	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "credentials do not match any record"
	ErrDevAuthTokenMissing     = "authorization token is missing"
	ErrDevAuthTokenInvalid     = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken    = "failed to generate token"
	ErrDevAuthSigningMethod    = "unexpected JWT signing method"
	ErrDevAuthInvalidSession   = "session not found or expired"
	ErrDevEmailAlreadyExists   = "email already exists in database"
	ErrDevOwnershipMismatch    = "resource is not owned by the requesting account"

	ErrDevDBFailedToFindDocument     = "failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to ObjectID"

	ErrDevDoctorNotExists           = "doctor document not found"
	ErrDevPatientNotExists          = "patient document not found"
	ErrDevAppointmentNotExists      = "appointment document not found"
	ErrDevDoctorNotAvailable        = "doctor availability flag is false"
	ErrDevSlotAlreadyReserved       = "slot time already present in reservation map"
	ErrDevAppointmentAlreadyDone    = "appointment flag already set"
	ErrDevBookingLockNotAcquired    = "could not acquire per-doctor booking lock"

	ErrDevRedisGetNoData      = "no data from redis with key: %s"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	ErrDevMinioFailedToCreateObject = "minio failed to create object in bucket: %s"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue: %s"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevDecodeResponse    = "failed to decode response body from: %s"

	ErrDevPaymentGatewayRequest    = "payment gateway request failed"
	ErrDevPaymentGatewayBadStatus  = "payment gateway responded with unexpected status: %d"
	ErrDevPaymentOrderNotCreated   = "payment gateway did not return an order"
	ErrDevPaymentCallbackForbidden = "payment callback key mismatch"
)
