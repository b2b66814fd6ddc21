package constvars

// Messages safe to show to API clients.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application"
	ErrClientCannotProcessRequest          = "Cannot process the request"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "You are not logged in"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientServerLongRespond             = "Server took too long to respond"

	ErrClientEmailAlreadyExists       = "Your email is already registered"
	ErrClientEmailNotValid            = "Email is not valid"
	ErrClientInvalidRoleType          = "Unknown role type"
	ErrClientEntryNotFound            = "Directory entry not found"
	ErrClientClinicianNotFound        = "Clinician not found"
	ErrClientPatientNotFound          = "Patient not found"
	ErrClientDonorNotFound            = "Donor not found"
	ErrClientAppointmentNotFound      = "Appointment not found"
	ErrClientDonorRequestNotFound     = "Donor request not found"
	ErrClientDonorRequestAlreadyExist = "The request is already placed"

	ErrClientInvalidScheduleWindow     = "Availability window must start before it ends"
	ErrClientOverlappingScheduleWindow = "Availability windows on the same day must not overlap"
	ErrClientInvalidScheduleDay        = "Availability window has an unknown day of week"
	ErrClientInvalidScheduleTime       = "Availability time must use the hh:mm AM/PM format"
	ErrClientInvalidRatingScore        = "Rating score must be between 1 and 5"
	ErrClientInvalidStatus             = "Unknown status value"
	ErrClientInvalidImageFormat        = "Profile picture format is not supported"
)

// Developer-facing messages, logged but never returned in production.
const (
	ErrDevValidationFailed               = "Request validation failed"
	ErrDevCannotParseJSON                = "Failed to parse JSON request body"
	ErrDevCannotParseDate                = "Failed to parse date value"
	ErrDevURLParamIDValidationFailed     = "URL parameter '%s' is missing or not a valid object id"
	ErrDevInvalidInput                   = "Invalid input"
	ErrDevInvalidCredentials             = "Credentials do not match any user"
	ErrDevEmailAlreadyExists             = "Email already registered to another entry"
	ErrDevDonorRequestAlreadyExists      = "Donor request already exists for patient and organ"
	ErrDevEntryNotExists                 = "Directory entry does not exist"
	ErrDevEntryRoleMismatch              = "Directory entry exists but has a different role"
	ErrDevAppointmentNotExists           = "Appointment does not exist"
	ErrDevDonorRequestNotExists          = "Donor request does not exist"
	ErrDevScheduleValidationFailed       = "Weekly schedule validation failed"
	ErrDevRatingScoreOutOfRange          = "Rating score outside the allowed range"
	ErrDevStatusUnknown                  = "Status value is not part of the enum"
	ErrDevFailedToHashPassword           = "Failed to hash password"
	ErrDevAuthTokenMissing               = "Authorization token missing from request"
	ErrDevAuthTokenInvalid               = "Authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired      = "Authorization token invalid or expired"
	ErrDevAuthSigningMethod              = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken              = "Failed to generate JWT"
	ErrDevAuthInvalidSession             = "Session not found or expired"
	ErrDevImageValidationFailed          = "Profile picture validation failed"
	ErrDevServerDeadlineExceeded         = "Operation exceeded its deadline"
	ErrDevDBFailedToFindDocument         = "MongoDB: failed to find document"
	ErrDevDBFailedToInsertDocument       = "MongoDB: failed to insert document"
	ErrDevDBFailedToUpdateDocument       = "MongoDB: failed to update document"
	ErrDevDBFailedToDeleteDocument       = "MongoDB: failed to delete document"
	ErrDevDBFailedToIterateDocuments     = "MongoDB: failed to iterate cursor"
	ErrDevDBStringNotObjectID            = "MongoDB: value is not a valid object id"
	ErrDevRedisFailedToSet               = "Redis: failed to set key"
	ErrDevRedisFailedToGet               = "Redis: failed to get key"
	ErrDevRedisFailedToDelete            = "Redis: failed to delete key"
	ErrDevMinioFailedToCreateObject      = "MinIO: failed to create object in bucket %s"
	ErrDevRabbitMQFailedToPublishMessage = "RabbitMQ: failed to publish message to queue %s"
	ErrDevCannotMarshalJSON              = "Failed to marshal value to JSON"

	ResponseUnknown = "unknown"
)
