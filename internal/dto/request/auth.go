package request

// SignupRequest registers an identity. "me" is reserved by the self-profile
// endpoint and cannot be a username.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150,slug,ne=me"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

type ObtainTokenRequest struct {
	Username         string `json:"username" validate:"required"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}
