package request

type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=150,slug,ne=me"`
	Email     string  `json:"email" validate:"required,email,max=254"`
	Role      string  `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
	Bio       *string `json:"bio,omitempty"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=150,slug,ne=me"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
	Bio       *string `json:"bio,omitempty"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
}
