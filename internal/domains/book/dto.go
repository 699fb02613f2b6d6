package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Title string `json:"title"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
	)
}

// BookDTO is the wire shape for both listing and creation responses.
type BookDTO struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

func (b *Book) ToDTO() BookDTO {
	return BookDTO{
		ID:    b.ID,
		Title: b.Title,
	}
}
