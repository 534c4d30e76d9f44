package dto

import "github.com/fekuna/omnipos-backoffice/internal/validation"

// CategoryInput is the body of both create and update.
type CategoryInput struct {
	CategoryName string  `json:"category_name" validate:"required,max=100"`
	Description  *string `json:"description"`
}

func (in *CategoryInput) Validate() error {
	return validation.Struct(in)
}
