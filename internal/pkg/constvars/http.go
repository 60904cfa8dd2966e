package constvars

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
	MIMEOctetStream     = "application/octet-stream"
	MIMEMultipartForm   = "multipart/form-data"

	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXCallbackKey  = "X-Callback-Key"
)

const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusAccepted = 202

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusGone            = 410
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)
