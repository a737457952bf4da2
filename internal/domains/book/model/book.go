package model

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"book-management/internal/shared/apperror"
)

const canonicalUUIDLength = 36

// Book is only built through NewBook, RestoreBook or Update, so every value satisfies:
// Title is 1-255 characters and not blank, 0 <= Price <= 1,000,000,
// AuthorIDs is non-empty without duplicates and Status is a known status.
type Book struct {
	ID        uuid.UUID
	Title     string
	Price     int
	AuthorIDs []uuid.UUID
	Status    PublicationStatus
}

// NewBook creates a book with a fresh random ID.
func NewBook(title string, price int, authorIDs []string, status PublicationStatus) (*Book, error) {
	ids, err := ParseAuthorIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	return build(uuid.New(), title, price, ids, status)
}

// RestoreBook rebuilds a book from stored rows.
// Rows that break the invariants are reported as corrupted data.
func RestoreBook(id uuid.UUID, title string, price int, authorIDs []uuid.UUID, status PublicationStatus) (*Book, error) {
	b, err := build(id, title, price, authorIDs, status)
	if err != nil {
		return nil, apperror.ErrCorruptedData.Withf("book %s violates invariants", id).Wrap(err)
	}
	return b, nil
}

// Update returns a validated copy with the same ID. The receiver is left untouched.
// A published book cannot go back to unpublished.
func (b *Book) Update(title string, price int, authorIDs []string, status PublicationStatus) (*Book, error) {
	ids, err := ParseAuthorIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(status) {
		return nil, ErrStatusDowngrade.Withf("book %s: %s -> %s", b.ID, b.Status, status)
	}
	return build(b.ID, title, price, ids, status)
}

// ParseAuthorIDs converts author ids to UUIDs, failing on the first malformed one.
// Only the canonical 36 character form is accepted, in either letter case.
func ParseAuthorIDs(authorIDs []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(authorIDs))
	for _, s := range authorIDs {
		if len(s) != canonicalUUIDLength {
			return nil, ErrInvalidAuthorID.Withf("author id %q is not a canonical UUID", s)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, ErrInvalidAuthorID.Withf("author id %q is not a UUID", s).Wrap(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// HasDuplicates reports whether ids contains the same UUID twice.
func HasDuplicates(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

func build(id uuid.UUID, title string, price int, authorIDs []uuid.UUID, status PublicationStatus) (*Book, error) {
	b := &Book{
		ID:        id,
		Title:     title,
		Price:     price,
		AuthorIDs: append([]uuid.UUID(nil), authorIDs...),
		Status:    status,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Book) validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrInvalidTitle.Withf("title must not be blank")
	}
	if n := utf8.RuneCountInString(b.Title); n > TitleMaxLength {
		return ErrInvalidTitle.Withf("title has %d characters, max %d", n, TitleMaxLength)
	}
	if b.Price < 0 {
		return ErrPriceNegative.Withf("price %d", b.Price)
	}
	if b.Price > PriceMax {
		return ErrPriceTooHigh.Withf("price %d, max %d", b.Price, PriceMax)
	}
	if len(b.AuthorIDs) == 0 {
		return ErrAuthorsEmpty
	}
	if HasDuplicates(b.AuthorIDs) {
		return ErrAuthorsDuplicate.Withf("author ids %v", b.AuthorIDs)
	}
	if !b.Status.IsValid() {
		return ErrInvalidStatus.Withf("publication status %q", b.Status)
	}
	return nil
}
