package service

import (
	"context"

	"produtos-api/internal/model"
)

// ProdutoService defines operations for produto management.
type ProdutoService interface {
	// List retrieves one page of produtos. Returns model.ErrNoProdutos when
	// the page holds no rows.
	List(ctx context.Context, page, limit int) ([]model.Produto, error)

	// Create validates nothing itself; it stores the already-validated
	// payload and returns the row with its generated id.
	Create(ctx context.Context, req *model.CreateProdutoRequest) (*model.Produto, error)

	// Update replaces all fields of an existing produto.
	Update(ctx context.Context, id int64, req *model.UpdateProdutoRequest) (*model.Produto, error)

	// Delete removes a produto by id.
	Delete(ctx context.Context, id int64) error
}
