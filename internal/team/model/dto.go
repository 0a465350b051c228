package model

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SortOrder selects the ordering of GET /teams.
type SortOrder string

const (
	// SortDefault orders teams by id.
	SortDefault SortOrder = ""
	// SortByName orders teams by name, ascending.
	SortByName SortOrder = "name"
	// SortByNameDesc orders teams by name, descending.
	SortByNameDesc SortOrder = "name_desc"
	// SortByLocation orders teams by location, ascending.
	SortByLocation SortOrder = "location"
	// SortByLocationDesc orders teams by location, descending.
	SortByLocationDesc SortOrder = "location_desc"
)

// ParseSortOrder matches s case-insensitively. Unknown values fall back to SortDefault.
func ParseSortOrder(s string) SortOrder {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case SortByName, SortByNameDesc, SortByLocation, SortByLocationDesc:
		return order
	default:
		return SortDefault
	}
}

// CreateTeamRequest represents the request body for POST /teams.
type CreateTeamRequest struct {
	Name     string `json:"name"     validate:"required"`
	Location string `json:"location" validate:"required"`
}

// Validate checks that name and location are present.
func (r *CreateTeamRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTeam, err.Error())
	}
	return nil
}

// ReplaceTeamRequest represents the request body for PUT /teams/{id}.
// The roster is not part of it.
type ReplaceTeamRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"     validate:"required"`
	Location string `json:"location" validate:"required"`
}

// Validate checks that name and location are present.
func (r *ReplaceTeamRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTeam, err.Error())
	}
	return nil
}

// ListTeamsQuery holds the query string of GET /teams.
type ListTeamsQuery struct {
	SortOrder    string `form:"sortOrder"`
	Page         int    `form:"page,default=1"`
	ItemsPerPage int    `form:"itemsPerPage,default=10"`
}
