package model

import "book-management/internal/shared/apperror"

const (
	TitleMaxLength = 255
	PriceMax       = 1_000_000
)

var (
	// Validation Errors
	ErrInvalidTitle     = apperror.Validation("BOOK_INVALID_TITLE", "book title is invalid")
	ErrPriceNegative    = apperror.Validation("BOOK_PRICE_NEGATIVE", "book price is negative")
	ErrPriceTooHigh     = apperror.Validation("BOOK_PRICE_TOO_HIGH", "book price exceeds the maximum")
	ErrAuthorsEmpty     = apperror.Validation("BOOK_AUTHORS_EMPTY", "book has no authors")
	ErrAuthorsDuplicate = apperror.Validation("BOOK_AUTHORS_DUPLICATED", "book author ids are duplicated")
	ErrInvalidAuthorID  = apperror.Validation("BOOK_INVALID_AUTHOR_ID", "author id is not a UUID")
	ErrInvalidStatus    = apperror.Validation("BOOK_INVALID_STATUS", "unknown publication status")

	// Business Rule Errors
	ErrAuthorsMissing  = apperror.Validation("BOOK_AUTHORS_MISSING", "some authors do not exist")
	ErrStatusDowngrade = apperror.Validation("BOOK_STATUS_DOWNGRADE", "published book cannot be unpublished")
	ErrBookNotFound    = apperror.NotFound("BOOK_NOT_FOUND", "book not found")
)
