package integration

import (
	"context"
	"testing"
	"time"

	"produtos-api/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing: the produtos table
// plus a referencing table used to exercise foreign-key conflicts on delete.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	if err := database.EnsureSchema(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	extra := `
		CREATE TABLE IF NOT EXISTS pedido_itens (
			id         BIGSERIAL PRIMARY KEY,
			produto_id BIGINT NOT NULL REFERENCES produtos(id),
			quantidade INTEGER NOT NULL CHECK (quantidade > 0)
		);
	`
	if _, err := pool.Exec(ctx, extra); err != nil {
		t.Fatalf("failed to create referencing table: %v", err)
	}
}

// SeedProdutos inserts test produto data and returns the generated ids.
func SeedProdutos(t *testing.T, pool *pgxpool.Pool) []int64 {
	t.Helper()

	ctx := context.Background()

	produtos := []struct {
		descricao string
		rating    int
	}{
		{"Produto A", 1},
		{"Produto B", 2},
		{"Produto C", 3},
		{"Produto D", 4},
		{"Produto E", 5},
	}

	ids := make([]int64, 0, len(produtos))
	for _, p := range produtos {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO produtos (descricao, rating) VALUES ($1, $2) RETURNING id",
			p.descricao, p.rating,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed produto %s: %v", p.descricao, err)
		}
		ids = append(ids, id)
	}

	return ids
}

// ReferenceProduto inserts a pedido_itens row pointing at the given produto.
func ReferenceProduto(t *testing.T, pool *pgxpool.Pool, produtoID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		"INSERT INTO pedido_itens (produto_id, quantidade) VALUES ($1, 1)",
		produtoID,
	)
	if err != nil {
		t.Fatalf("failed to reference produto %d: %v", produtoID, err)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"pedido_itens", "produtos"}
	for _, table := range tables {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
