package request

type CreateReviewRequest struct {
	Score int    `json:"score" validate:"required,min=1,max=10"`
	Text  string `json:"text" validate:"required"`
}

type UpdateReviewRequest struct {
	Score *int    `json:"score,omitempty" validate:"omitempty,min=1,max=10"`
	Text  *string `json:"text,omitempty"`
}
