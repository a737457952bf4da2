package model_test

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management/internal/domains/book/model"
	"book-management/internal/shared/apperror"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = uuid.NewString()
	}
	return out
}

func Test_NewBook_Success(t *testing.T) {
	authorIDs := ids(2)

	b, err := model.NewBook("Kokoro", 1200, authorIDs, model.StatusUnpublished)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, "Kokoro", b.Title)
	assert.Equal(t, 1200, b.Price)
	assert.Equal(t, model.StatusUnpublished, b.Status)
	require.Len(t, b.AuthorIDs, 2)
	assert.Equal(t, authorIDs[0], b.AuthorIDs[0].String())
	assert.Equal(t, authorIDs[1], b.AuthorIDs[1].String())
}

func Test_NewBook_Validation(t *testing.T) {
	dup := uuid.NewString()

	testCases := []struct {
		name      string
		title     string
		price     int
		authorIDs []string
		status    model.PublicationStatus
		wantErr   error
	}{
		{"blank title", "  ", 100, ids(1), model.StatusPublished, model.ErrInvalidTitle},
		{"empty title", "", 100, ids(1), model.StatusPublished, model.ErrInvalidTitle},
		{"title too long", strings.Repeat("x", 256), 100, ids(1), model.StatusPublished, model.ErrInvalidTitle},
		{"negative price", "T", -1, ids(1), model.StatusPublished, model.ErrPriceNegative},
		{"price too high", "T", 1_000_001, ids(1), model.StatusPublished, model.ErrPriceTooHigh},
		{"no authors", "T", 100, []string{}, model.StatusPublished, model.ErrAuthorsEmpty},
		{"duplicated authors", "T", 100, []string{dup, dup}, model.StatusPublished, model.ErrAuthorsDuplicate},
		{"malformed author id", "T", 100, []string{"nope"}, model.StatusPublished, model.ErrInvalidAuthorID},
		{"unknown status", "T", 100, ids(1), model.PublicationStatus("DRAFT"), model.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.NewBook(tc.title, tc.price, tc.authorIDs, tc.status)

			assert.ErrorIs(t, err, tc.wantErr)
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
		})
	}
}

func Test_NewBook_Boundaries(t *testing.T) {
	_, err := model.NewBook(strings.Repeat("本", 255), 0, ids(1), model.StatusUnpublished)
	assert.NoError(t, err)

	_, err = model.NewBook("T", 1_000_000, ids(1), model.StatusUnpublished)
	assert.NoError(t, err)
}

func Test_Book_Update_StatusTransitions(t *testing.T) {
	testCases := []struct {
		from, to model.PublicationStatus
		wantErr  error
	}{
		{model.StatusUnpublished, model.StatusUnpublished, nil},
		{model.StatusUnpublished, model.StatusPublished, nil},
		{model.StatusPublished, model.StatusPublished, nil},
		{model.StatusPublished, model.StatusUnpublished, model.ErrStatusDowngrade},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			b, err := model.NewBook("T", 100, ids(1), tc.from)
			require.NoError(t, err)

			updated, err := b.Update("T", 100, ids(1), tc.to)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, updated.Status)
		})
	}
}

func Test_Book_Update_KeepsIDAndOriginal(t *testing.T) {
	b, err := model.NewBook("Before", 100, ids(1), model.StatusUnpublished)
	require.NoError(t, err)
	newAuthors := ids(2)

	updated, err := b.Update("After", 200, newAuthors, model.StatusPublished)

	require.NoError(t, err)
	assert.Equal(t, b.ID, updated.ID)
	assert.Equal(t, "After", updated.Title)
	assert.Len(t, updated.AuthorIDs, 2)
	assert.Equal(t, "Before", b.Title)
	assert.Len(t, b.AuthorIDs, 1)
	assert.Equal(t, model.StatusUnpublished, b.Status)
}

func Test_Book_Update_MalformedAuthorIDCheckedBeforeDowngrade(t *testing.T) {
	b, err := model.NewBook("T", 100, ids(1), model.StatusPublished)
	require.NoError(t, err)

	_, err = b.Update("T", 100, []string{"bad"}, model.StatusUnpublished)

	assert.ErrorIs(t, err, model.ErrInvalidAuthorID)
}

func Test_Book_Update_Revalidates(t *testing.T) {
	b, err := model.NewBook("T", 100, ids(1), model.StatusUnpublished)
	require.NoError(t, err)

	_, err = b.Update("T", -5, ids(1), model.StatusUnpublished)

	assert.ErrorIs(t, err, model.ErrPriceNegative)
}

func Test_RestoreBook_CorruptedRow(t *testing.T) {
	_, err := model.RestoreBook(uuid.New(), "T", 100, nil, model.StatusPublished)

	assert.ErrorIs(t, err, apperror.ErrCorruptedData)
	assert.ErrorIs(t, err, model.ErrAuthorsEmpty)
	assert.Equal(t, 500, apperror.HTTPStatus(err))
}

func Test_ParsePublicationStatus(t *testing.T) {
	s, err := model.ParsePublicationStatus("PUBLISHED")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, s)

	_, err = model.ParsePublicationStatus("published")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func Test_ParseAuthorIDs(t *testing.T) {
	parsed, err := model.ParseAuthorIDs([]string{"3f2504e0-4f89-11d3-9a0c-0305e82c3301"})
	require.NoError(t, err)
	assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", parsed[0].String())

	_, err = model.ParseAuthorIDs([]string{"3f2504e0-4f89-11d3-9a0c-0305e82c3301", "xyz"})
	assert.ErrorIs(t, err, model.ErrInvalidAuthorID)
}

func Test_ParseAuthorIDs_CanonicalFormOnly(t *testing.T) {
	const id = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

	upper, err := model.ParseAuthorIDs([]string{strings.ToUpper(id)})
	require.NoError(t, err)
	assert.Equal(t, id, upper[0].String())

	for _, s := range []string{
		"{" + id + "}",
		"urn:uuid:" + id,
		"3f2504e04f8911d39a0c0305e82c3301",
		"",
	} {
		_, err := model.ParseAuthorIDs([]string{s})
		assert.ErrorIs(t, err, model.ErrInvalidAuthorID, s)
	}
}

func Test_HasDuplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.False(t, model.HasDuplicates([]uuid.UUID{a, b}))
	assert.True(t, model.HasDuplicates([]uuid.UUID{a, b, a}))
	assert.False(t, model.HasDuplicates(nil))
}

func Test_ToResponse(t *testing.T) {
	b, err := model.NewBook("T", 100, ids(1), model.StatusPublished)
	require.NoError(t, err)

	resp := b.ToResponse()

	assert.Equal(t, b.ID.String(), resp.ID)
	assert.Equal(t, []string{b.AuthorIDs[0].String()}, resp.AuthorIDs)
	assert.Equal(t, "PUBLISHED", resp.Status)
}

func Test_BookRegisterRequest_Validate(t *testing.T) {
	price := func(p int) *int { return &p }

	testCases := []struct {
		name      string
		req       model.BookRegisterRequest
		wantField string
		wantCode  string
	}{
		{"valid", model.BookRegisterRequest{Title: "T", Price: price(0), AuthorIDs: ids(1), Status: "PUBLISHED"}, "", ""},
		{"missing price", model.BookRegisterRequest{Title: "T", AuthorIDs: ids(1), Status: "PUBLISHED"}, "price", "BOOK_PRICE_REQUIRED"},
		{"negative price", model.BookRegisterRequest{Title: "T", Price: price(-1), AuthorIDs: ids(1), Status: "PUBLISHED"}, "price", "BOOK_PRICE_MIN"},
		{"empty authors", model.BookRegisterRequest{Title: "T", Price: price(1), AuthorIDs: []string{}, Status: "PUBLISHED"}, "authorIds", "BOOK_AUTHORS_REQUIRED"},
		{"bad status", model.BookRegisterRequest{Title: "T", Price: price(1), AuthorIDs: ids(1), Status: "DRAFT"}, "status", "BOOK_INVALID_STATUS"},
		{"title too long", model.BookRegisterRequest{Title: strings.Repeat("x", 256), Price: price(1), AuthorIDs: ids(1), Status: "PUBLISHED"}, "title", "BOOK_TITLE_TOO_LONG"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()

			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			var ve validation.Error
			require.ErrorAs(t, errs[tc.wantField], &ve)
			assert.Equal(t, tc.wantCode, ve.Code())
		})
	}
}
