package requests

type SubmitRating struct {
	RaterID string `json:"raterId" validate:"required"`
	Score   int    `json:"score" validate:"required,min=1,max=5"`
}
