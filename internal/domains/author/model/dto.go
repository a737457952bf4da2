package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// AuthorRegisterRequest - POST /api/authors
type AuthorRegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
}

func (r AuthorRegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules...),
		validation.Field(&r.DateOfBirth, dateOfBirthRules...),
	)
}

// AuthorUpdateRequest - PUT /api/authors/:id
type AuthorUpdateRequest struct {
	Name        string `json:"name" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
}

func (r AuthorUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules...),
		validation.Field(&r.DateOfBirth, dateOfBirthRules...),
	)
}

var (
	nameRules = []validation.Rule{
		validation.Required.ErrorObject(validation.NewError("AUTHOR_NAME_REQUIRED", "name is required")),
		validation.RuneLength(0, NameMaxLength).ErrorObject(validation.NewError("AUTHOR_NAME_TOO_LONG", "name must be at most 255 characters")),
	}
	dateOfBirthRules = []validation.Rule{
		validation.Required.ErrorObject(validation.NewError("AUTHOR_BIRTH_DATE_REQUIRED", "date of birth is required")),
		validation.Date(DateLayout).ErrorObject(validation.NewError("AUTHOR_BIRTH_DATE_FORMAT", "date of birth must be YYYY-MM-DD")),
	}
)

// ========================================
// RESPONSE DTOs
// ========================================

type AuthorResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
}

// ToResponse converts Author to AuthorResponse
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		DateOfBirth: a.DateOfBirth.Format(DateLayout),
	}
}
