package requests

type Register struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=6"`
	Role           string   `json:"userRole" validate:"required,oneof=admin patient donor clinician"`
	BloodType      string   `json:"bloodType,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	SelectedOrgans []string `json:"selectedOrgan,omitempty"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
