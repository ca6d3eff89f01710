package request

type TitleRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=256"`
	Year        int      `json:"year" validate:"required,min=1,max=2100"`
	Description *string  `json:"description,omitempty"`
	Category    string   `json:"category" validate:"required,slug"`
	Genres      []string `json:"genre" validate:"dive,slug"`
}

type TitleUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=256"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,min=1,max=2100"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,slug"`
	Genres      []string `json:"genre,omitempty" validate:"omitempty,dive,slug"`
}

// TitleListFilter carries the list query parameters.
type TitleListFilter struct {
	Category string
	Genre    string
	Name     string
	Year     *int
}
