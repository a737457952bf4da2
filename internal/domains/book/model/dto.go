package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// BookRegisterRequest - POST /api/books
type BookRegisterRequest struct {
	Title     string   `json:"title" binding:"required"`
	Price     *int     `json:"price" binding:"required"`
	AuthorIDs []string `json:"authorIds" binding:"required"`
	Status    string   `json:"status" binding:"required"`
}

func (r BookRegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules...),
		validation.Field(&r.Price, priceRules...),
		validation.Field(&r.AuthorIDs, authorIDsRules...),
		validation.Field(&r.Status, statusRules...),
	)
}

// BookUpdateRequest - PUT /api/books/:id
type BookUpdateRequest struct {
	Title     string   `json:"title" binding:"required"`
	Price     *int     `json:"price" binding:"required"`
	AuthorIDs []string `json:"authorIds" binding:"required"`
	Status    string   `json:"status" binding:"required"`
}

func (r BookUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules...),
		validation.Field(&r.Price, priceRules...),
		validation.Field(&r.AuthorIDs, authorIDsRules...),
		validation.Field(&r.Status, statusRules...),
	)
}

var (
	titleRules = []validation.Rule{
		validation.Required.ErrorObject(validation.NewError("BOOK_TITLE_REQUIRED", "title is required")),
		validation.RuneLength(0, TitleMaxLength).ErrorObject(validation.NewError("BOOK_TITLE_TOO_LONG", "title must be at most 255 characters")),
	}
	priceRules = []validation.Rule{
		validation.NotNil.ErrorObject(validation.NewError("BOOK_PRICE_REQUIRED", "price is required")),
		validation.Min(0).ErrorObject(validation.NewError("BOOK_PRICE_MIN", "price must be 0 or more")),
	}
	authorIDsRules = []validation.Rule{
		validation.Required.ErrorObject(validation.NewError("BOOK_AUTHORS_REQUIRED", "at least one author is required")),
	}
	statusRules = []validation.Rule{
		validation.Required.ErrorObject(validation.NewError("BOOK_STATUS_REQUIRED", "status is required")),
		validation.In(string(StatusUnpublished), string(StatusPublished)).ErrorObject(validation.NewError("BOOK_INVALID_STATUS", "status must be UNPUBLISHED or PUBLISHED")),
	}
)

// PriceValue dereferences a validated price.
func PriceValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// ========================================
// RESPONSE DTOs
// ========================================

type BookResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     int      `json:"price"`
	AuthorIDs []string `json:"authorIds"`
	Status    string   `json:"status"`
}

// ToResponse converts Book to BookResponse
func (b *Book) ToResponse() *BookResponse {
	authorIDs := make([]string, len(b.AuthorIDs))
	for i, id := range b.AuthorIDs {
		authorIDs[i] = id.String()
	}
	return &BookResponse{
		ID:        b.ID.String(),
		Title:     b.Title,
		Price:     b.Price,
		AuthorIDs: authorIDs,
		Status:    b.Status.String(),
	}
}
