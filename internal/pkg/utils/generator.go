package utils

import (
	"fmt"

	"github.com/google/uuid"
)

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateProfilePictureObjectName(userID, extension string) string {
	return fmt.Sprintf("profile-pictures/%s-%s%s", userID, uuid.NewString(), extension)
}
