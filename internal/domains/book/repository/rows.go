package repository

import (
	"github.com/google/uuid"

	"book-management/internal/domains/book/model"
	"book-management/internal/shared/apperror"
)

// bookRecord is one row of books. IDs stay strings so that both UUID and TEXT columns scan.
type bookRecord struct {
	ID     string `db:"id"`
	Title  string `db:"title"`
	Price  int    `db:"price"`
	Status string `db:"publication_status"`
}

// bookAuthorRecord is one row of book_authors.
type bookAuthorRecord struct {
	BookID   string `db:"book_id"`
	AuthorID string `db:"author_id"`
}

// restoreBooks rebuilds books in record order. Links must be sorted by position within a book.
func restoreBooks(records []bookRecord, links []bookAuthorRecord) ([]*model.Book, error) {
	authorIDs := make(map[string][]uuid.UUID, len(records))
	for _, link := range links {
		id, err := uuid.Parse(link.AuthorID)
		if err != nil {
			return nil, apperror.ErrCorruptedData.
				Withf("book %s has author id %q that is not a UUID", link.BookID, link.AuthorID).Wrap(err)
		}
		authorIDs[link.BookID] = append(authorIDs[link.BookID], id)
	}

	books := make([]*model.Book, 0, len(records))
	for _, rec := range records {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, apperror.ErrCorruptedData.Withf("book id %q is not a UUID", rec.ID).Wrap(err)
		}

		b, err := model.RestoreBook(id, rec.Title, rec.Price, authorIDs[rec.ID], model.PublicationStatus(rec.Status))
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}
