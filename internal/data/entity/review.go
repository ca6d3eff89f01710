package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID       uuid.UUID `db:"id"`
	TitleID  uuid.UUID `db:"title_id"`
	AuthorID uuid.UUID `db:"author_id"`
	Score    int       `db:"score"` // 1-10
	Text     string    `db:"text"`
	PubDate  time.Time `db:"pub_date"`
}
