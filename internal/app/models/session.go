package models

type Session struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}
