package books

import (
	"context"
	"errors"

	"bookshelf/pkg/models"
)

// ErrBookNotFound marks a lookup on an isbn the store has never seen.
var ErrBookNotFound = errors.New("book does not exist")

// Store is the contract for book persistence. Create and Update return
// storage-layer errors as-is: a duplicate isbn surfaces the driver's
// unique-violation error unwrapped so callers can forward it.
type Store interface {
	List(ctx context.Context) ([]models.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	Create(ctx context.Context, b models.Book) error
	Update(ctx context.Context, isbn string, b models.Book) error
}
