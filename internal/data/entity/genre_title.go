package entity

import (
	"github.com/google/uuid"
)

// GenreTitle is the junction row between titles and genres.
type GenreTitle struct {
	BaseSimple
	TitleID uuid.UUID `db:"title_id"`
	GenreID uuid.UUID `db:"genre_id"`
}
