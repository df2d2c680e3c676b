package service

import (
	"context"
	"errors"
	"fmt"

	"produtos-api/internal/model"
	"produtos-api/internal/repository"

	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// produtoService implements ProdutoService.
type produtoService struct {
	repo   repository.ProdutoRepository
	logger zerolog.Logger
}

// NewProdutoService creates a new produto service.
func NewProdutoService(repo repository.ProdutoRepository, logger zerolog.Logger) ProdutoService {
	return &produtoService{
		repo:   repo,
		logger: logger.With().Str("service", "produto").Logger(),
	}
}

// List retrieves one page of produtos.
func (s *produtoService) List(ctx context.Context, page, limit int) ([]model.Produto, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset := (page - 1) * limit

	produtos, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("page", page).
			Int("limit", limit).
			Msg("failed to list produtos")
		return nil, fmt.Errorf("failed to list produtos: %w", err)
	}

	// An empty page and an empty table are indistinguishable here; both
	// surface as not found, matching the documented endpoint contract.
	if len(produtos) == 0 {
		s.logger.Debug().
			Int("page", page).
			Int("limit", limit).
			Msg("no produtos on requested page")
		return nil, model.ErrNoProdutos
	}

	s.logger.Debug().
		Int("count", len(produtos)).
		Int("page", page).
		Int("limit", limit).
		Msg("retrieved produtos")

	return produtos, nil
}

// Create stores a new produto and returns it with the generated id.
func (s *produtoService) Create(ctx context.Context, req *model.CreateProdutoRequest) (*model.Produto, error) {
	produto := &model.Produto{
		Descricao: req.Descricao,
		Rating:    req.Rating,
	}

	if err := s.repo.Create(ctx, produto); err != nil {
		s.logger.Error().Err(err).
			Str("descricao", req.Descricao).
			Msg("failed to create produto")
		return nil, fmt.Errorf("failed to create produto: %w", err)
	}

	s.logger.Info().
		Int64("produto_id", produto.ID).
		Msg("produto created")

	return produto, nil
}

// Update replaces all fields of an existing produto.
func (s *produtoService) Update(ctx context.Context, id int64, req *model.UpdateProdutoRequest) (*model.Produto, error) {
	produto := &model.Produto{
		ID:        id,
		Descricao: req.Descricao,
		Rating:    req.Rating,
	}

	if err := s.repo.Update(ctx, produto); err != nil {
		if errors.Is(err, model.ErrProdutoNotFound) {
			s.logger.Debug().Int64("produto_id", id).Msg("produto not found")
			return nil, err
		}
		s.logger.Error().Err(err).
			Int64("produto_id", id).
			Msg("failed to update produto")
		return nil, fmt.Errorf("failed to update produto: %w", err)
	}

	s.logger.Info().
		Int64("produto_id", id).
		Msg("produto updated")

	return produto, nil
}

// Delete removes a produto by id.
func (s *produtoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrProdutoNotFound) {
			s.logger.Debug().Int64("produto_id", id).Msg("produto not found")
			return err
		}
		s.logger.Error().Err(err).
			Int64("produto_id", id).
			Msg("failed to delete produto")
		return fmt.Errorf("failed to delete produto: %w", err)
	}

	s.logger.Info().
		Int64("produto_id", id).
		Msg("produto deleted")

	return nil
}
