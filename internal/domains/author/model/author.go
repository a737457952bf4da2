package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"book-management/internal/shared/apperror"
)

const (
	NameMaxLength = 255
	DateLayout    = "2006-01-02"
)

// Author is only built through NewAuthor, RestoreAuthor or Update, so every value satisfies:
// Name is 1-255 characters and not blank, DateOfBirth is a UTC calendar date before today.
type Author struct {
	ID          uuid.UUID
	Name        string
	DateOfBirth time.Time
}

// NewAuthor creates an author with a fresh random ID.
func NewAuthor(name string, dateOfBirth time.Time) (*Author, error) {
	return build(uuid.New(), name, dateOfBirth)
}

// RestoreAuthor rebuilds an author from a stored row.
// A row that breaks the invariants is reported as corrupted data.
func RestoreAuthor(id uuid.UUID, name string, dateOfBirth time.Time) (*Author, error) {
	a, err := build(id, name, dateOfBirth)
	if err != nil {
		return nil, apperror.ErrCorruptedData.Withf("author %s violates invariants", id).Wrap(err)
	}
	return a, nil
}

// Update returns a validated copy with the same ID. The receiver is left untouched.
func (a *Author) Update(name string, dateOfBirth time.Time) (*Author, error) {
	return build(a.ID, name, dateOfBirth)
}

func build(id uuid.UUID, name string, dateOfBirth time.Time) (*Author, error) {
	a := &Author{
		ID:          id,
		Name:        name,
		DateOfBirth: ToDate(dateOfBirth),
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Author) validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrInvalidName.Withf("name must not be blank")
	}
	if n := utf8.RuneCountInString(a.Name); n > NameMaxLength {
		return ErrInvalidName.Withf("name has %d characters, max %d", n, NameMaxLength)
	}
	if !a.DateOfBirth.Before(Today()) {
		return ErrInvalidBirthDate.Withf("date of birth %s is not in the past", a.DateOfBirth.Format(DateLayout))
	}
	return nil
}

// ToDate drops the time of day, keeping the calendar date of t as a UTC midnight.
func ToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the current UTC date.
func Today() time.Time {
	return ToDate(time.Now().UTC())
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrBirthDateFormat.Withf("cannot parse %q as date", s).Wrap(err)
	}
	return t, nil
}
