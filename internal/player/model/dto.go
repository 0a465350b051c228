package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreatePlayerRequest represents the request body for POST /players.
type CreatePlayerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

// Validate checks that both names are present.
func (r *CreatePlayerRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPlayer, err.Error())
	}
	return nil
}

// ReplacePlayerRequest represents the request body for PUT /players/{id}.
// ID must repeat the path id.
type ReplacePlayerRequest struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

// Validate checks that both names are present.
func (r *ReplacePlayerRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPlayer, err.Error())
	}
	return nil
}

// ListPlayersQuery holds the query string of GET /players.
type ListPlayersQuery struct {
	LastName     string `form:"lastName"`
	Page         int    `form:"page,default=1"`
	ItemsPerPage int    `form:"itemsPerPage,default=10"`
}
