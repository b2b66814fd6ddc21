package constvars

// CustomValidationErrorMessages maps validator tags to client wording.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"oneof":    "must be one of: %s",
	"datetime": "must match the %s format",
}

// TagsWithParams lists tags whose message carries the tag parameter.
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}
