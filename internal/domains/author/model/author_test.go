package model_test

import (
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management/internal/domains/author/model"
	"book-management/internal/shared/apperror"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_NewAuthor_Success(t *testing.T) {
	a, err := model.NewAuthor("Haruki Murakami", date(1949, time.January, 12))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "Haruki Murakami", a.Name)
	assert.Equal(t, date(1949, time.January, 12), a.DateOfBirth)
}

func Test_NewAuthor_GeneratesDistinctIDs(t *testing.T) {
	a1, err := model.NewAuthor("A", date(1990, time.May, 1))
	require.NoError(t, err)
	a2, err := model.NewAuthor("A", date(1990, time.May, 1))
	require.NoError(t, err)

	assert.NotEqual(t, a1.ID, a2.ID)
}

func Test_NewAuthor_NameBoundaries(t *testing.T) {
	dob := date(1990, time.May, 1)

	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single character", "a", false},
		{"255 ascii characters", strings.Repeat("a", 255), false},
		{"255 multibyte characters", strings.Repeat("あ", 255), false},
		{"256 characters", strings.Repeat("a", 256), true},
		{"empty", "", true},
		{"blank", "   \t", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.NewAuthor(tc.input, dob)

			if tc.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidName)
				assert.Equal(t, apperror.KindValidation, kindOf(t, err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_NewAuthor_DateOfBirthMustBePast(t *testing.T) {
	today := model.Today()

	_, err := model.NewAuthor("A", today)
	assert.ErrorIs(t, err, model.ErrInvalidBirthDate)

	_, err = model.NewAuthor("A", today.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, model.ErrInvalidBirthDate)

	_, err = model.NewAuthor("A", today.AddDate(0, 0, -1))
	assert.NoError(t, err)
}

func Test_NewAuthor_DropsTimeOfDay(t *testing.T) {
	a, err := model.NewAuthor("A", time.Date(1990, time.May, 1, 23, 59, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, date(1990, time.May, 1), a.DateOfBirth)
}

func Test_Author_Update_KeepsIDAndOriginal(t *testing.T) {
	original, err := model.NewAuthor("Before", date(1980, time.March, 3))
	require.NoError(t, err)

	updated, err := original.Update("After", date(1981, time.April, 4))

	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "Before", original.Name)
}

func Test_Author_Update_Revalidates(t *testing.T) {
	original, err := model.NewAuthor("Before", date(1980, time.March, 3))
	require.NoError(t, err)

	_, err = original.Update("", date(1980, time.March, 3))

	assert.ErrorIs(t, err, model.ErrInvalidName)
}

func Test_RestoreAuthor_CorruptedRow(t *testing.T) {
	id := uuid.New()

	_, err := model.RestoreAuthor(id, "", date(1980, time.March, 3))

	assert.ErrorIs(t, err, apperror.ErrCorruptedData)
	assert.ErrorIs(t, err, model.ErrInvalidName)
	assert.Equal(t, apperror.KindInvalidState, kindOf(t, err))
}

func Test_RestoreAuthor_KeepsID(t *testing.T) {
	id := uuid.New()

	a, err := model.RestoreAuthor(id, "Restored", date(1980, time.March, 3))

	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
}

func Test_ParseDate(t *testing.T) {
	d, err := model.ParseDate("2000-02-29")
	require.NoError(t, err)
	assert.Equal(t, date(2000, time.February, 29), d)

	_, err = model.ParseDate("29/02/2000")
	assert.ErrorIs(t, err, model.ErrBirthDateFormat)
}

func Test_ToResponse(t *testing.T) {
	id := uuid.New()
	a, err := model.RestoreAuthor(id, "A", date(1990, time.May, 1))
	require.NoError(t, err)

	resp := a.ToResponse()

	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "1990-05-01", resp.DateOfBirth)
}

func Test_AuthorRegisterRequest_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		req      model.AuthorRegisterRequest
		wantCode map[string]string
	}{
		{
			name: "valid",
			req:  model.AuthorRegisterRequest{Name: "A", DateOfBirth: "1990-05-01"},
		},
		{
			name:     "missing name",
			req:      model.AuthorRegisterRequest{DateOfBirth: "1990-05-01"},
			wantCode: map[string]string{"name": "AUTHOR_NAME_REQUIRED"},
		},
		{
			name:     "name too long",
			req:      model.AuthorRegisterRequest{Name: strings.Repeat("a", 256), DateOfBirth: "1990-05-01"},
			wantCode: map[string]string{"name": "AUTHOR_NAME_TOO_LONG"},
		},
		{
			name:     "bad date format",
			req:      model.AuthorRegisterRequest{Name: "A", DateOfBirth: "01-05-1990"},
			wantCode: map[string]string{"dateOfBirth": "AUTHOR_BIRTH_DATE_FORMAT"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()

			if tc.wantCode == nil {
				assert.NoError(t, err)
				return
			}
			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			for field, code := range tc.wantCode {
				var ve validation.Error
				require.ErrorAs(t, errs[field], &ve, field)
				assert.Equal(t, code, ve.Code())
			}
		})
	}
}

func kindOf(t *testing.T, err error) apperror.Kind {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	return appErr.Kind
}
