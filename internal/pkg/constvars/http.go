package constvars

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"

	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusForbidden    = 403
	StatusNotFound     = 404
	StatusConflict     = 409

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)
