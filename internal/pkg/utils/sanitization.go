package utils

import (
	"carelink-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterRequest(request *requests.Register) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Role = strings.ToLower(strings.TrimSpace(request.Role))
	request.Specialization = strings.TrimSpace(request.Specialization)
	request.BloodType = strings.TrimSpace(request.BloodType)
	for i := range request.SelectedOrgans {
		request.SelectedOrgans[i] = strings.TrimSpace(request.SelectedOrgans[i])
	}
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeUpdateEntryRequest(request *requests.UpdateEntry) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if request.Specialization != nil {
		trimmed := strings.TrimSpace(*request.Specialization)
		request.Specialization = &trimmed
	}
	if request.BloodType != nil {
		trimmed := strings.TrimSpace(*request.BloodType)
		request.BloodType = &trimmed
	}
	for i := range request.SelectedOrgans {
		request.SelectedOrgans[i] = strings.TrimSpace(request.SelectedOrgans[i])
	}
}
