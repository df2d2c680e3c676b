package repository

import (
	"context"
	"errors"
	"fmt"

	"produtos-api/internal/model"
	"produtos-api/internal/sqlerr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// produtoRepository implements the ProdutoRepository interface using PostgreSQL.
type produtoRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProdutoRepository creates a new PostgreSQL-backed produto repository.
func NewProdutoRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProdutoRepository {
	return &produtoRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "produto").Logger(),
	}
}

// List retrieves produtos with pagination support.
func (r *produtoRepository) List(ctx context.Context, limit, offset int) ([]model.Produto, error) {
	query := `
		SELECT id, descricao, rating
		FROM produtos
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query produtos")
		return nil, fmt.Errorf("failed to query produtos: %w", sqlerr.Wrap(err))
	}
	defer rows.Close()

	var produtos []model.Produto
	for rows.Next() {
		var p model.Produto
		if err := rows.Scan(&p.ID, &p.Descricao, &p.Rating); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan produto row")
			return nil, fmt.Errorf("failed to scan produto: %w", err)
		}
		produtos = append(produtos, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating produto rows")
		return nil, fmt.Errorf("error iterating produtos: %w", sqlerr.Wrap(err))
	}

	return produtos, nil
}

// Create inserts a new produto and fills in the generated id.
func (r *produtoRepository) Create(ctx context.Context, p *model.Produto) error {
	query := `
		INSERT INTO produtos (descricao, rating)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query, p.Descricao, p.Rating).Scan(&p.ID); err != nil {
		r.logger.Error().Err(err).
			Str("descricao", p.Descricao).
			Msg("failed to insert produto")
		return fmt.Errorf("failed to insert produto: %w", sqlerr.Wrap(err))
	}

	r.logger.Debug().
		Int64("produto_id", p.ID).
		Msg("produto created successfully")

	return nil
}

// Update replaces all mutable fields of the produto identified by p.ID.
func (r *produtoRepository) Update(ctx context.Context, p *model.Produto) error {
	query := `
		UPDATE produtos
		SET descricao = $1, rating = $2
		WHERE id = $3
		RETURNING id, descricao, rating
	`

	err := r.pool.QueryRow(ctx, query, p.Descricao, p.Rating, p.ID).
		Scan(&p.ID, &p.Descricao, &p.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("produto_id", p.ID).Msg("produto not found for update")
			return model.ErrProdutoNotFound
		}
		r.logger.Error().Err(err).
			Int64("produto_id", p.ID).
			Msg("failed to update produto")
		return fmt.Errorf("failed to update produto: %w", sqlerr.Wrap(err))
	}

	r.logger.Debug().
		Int64("produto_id", p.ID).
		Msg("produto updated successfully")

	return nil
}

// Delete removes the produto with the given id.
func (r *produtoRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM produtos
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("produto_id", id).
			Msg("failed to delete produto")
		return fmt.Errorf("failed to delete produto: %w", sqlerr.Wrap(err))
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("produto_id", id).Msg("produto not found for delete")
		return model.ErrProdutoNotFound
	}

	r.logger.Debug().
		Int64("produto_id", id).
		Msg("produto deleted successfully")

	return nil
}
