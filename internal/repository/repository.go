package repository

import (
	"context"

	"produtos-api/internal/model"
)

// ProdutoRepository defines the interface for produto data access operations.
// Every method issues exactly one SQL statement; failures are classified via
// internal/sqlerr before they leave this package.
type ProdutoRepository interface {
	// List retrieves produtos with pagination support, ordered by id.
	List(ctx context.Context, limit, offset int) ([]model.Produto, error)

	// Create inserts a new produto and fills in the generated id.
	Create(ctx context.Context, p *model.Produto) error

	// Update replaces all mutable fields of the produto identified by p.ID.
	// Returns model.ErrProdutoNotFound when no row matches.
	Update(ctx context.Context, p *model.Produto) error

	// Delete removes the produto with the given id.
	// Returns model.ErrProdutoNotFound when no row matches.
	Delete(ctx context.Context, id int64) error
}
