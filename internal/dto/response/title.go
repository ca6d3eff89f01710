package response

import (
	"reviewhub/internal/data/entity"
)

type TitleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Description *string           `json:"description,omitempty"`
	Rating      *float64          `json:"rating"`
	Category    *CategoryResponse `json:"category"`
	Genres      []GenreResponse   `json:"genre"`
}

// Helper converter
func TitleToResponse(title *entity.Title, category *entity.Category, genres []*entity.Genre) TitleResponse {
	resp := TitleResponse{
		ID:          title.ID.String(),
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
		Rating:      title.Rating,
		Genres:      make([]GenreResponse, 0, len(genres)),
	}

	if category != nil {
		c := CategoryToResponse(category)
		resp.Category = &c
	}

	for _, genre := range genres {
		resp.Genres = append(resp.Genres, GenreToResponse(genre))
	}

	return resp
}
