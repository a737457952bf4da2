package model

import "book-management/internal/shared/apperror"

var (
	// Validation Errors
	ErrInvalidName      = apperror.Validation("AUTHOR_INVALID_NAME", "author name is invalid")
	ErrInvalidBirthDate = apperror.Validation("AUTHOR_INVALID_BIRTH_DATE", "author date of birth is invalid")
	ErrBirthDateFormat  = apperror.Validation("AUTHOR_BIRTH_DATE_FORMAT", "date of birth must be YYYY-MM-DD")

	// Business Rule Errors
	ErrAuthorNotFound = apperror.NotFound("AUTHOR_NOT_FOUND", "author not found")
)
