package model

import "time"

// Deck: колода в том виде, в каком её отдаёт сервер.
type Deck struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DescriptionOrEmpty возвращает описание или пустую строку.
func (d Deck) DescriptionOrEmpty() string {
	if d.Description == nil {
		return ""
	}
	return *d.Description
}
