package recipes

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/recipebox-go/apperror"
)

// PostgresStore is the pgx-backed implementation of Store. Ingredients
// map to a text[] column, which pgx scans into []string directly.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, recipe *Recipe) error {
	query := `INSERT INTO recipes (id, owner_id, title, ingredients, instructions, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.pool.Exec(ctx, query,
		recipe.ID, recipe.OwnerID, recipe.Title, recipe.Ingredients, recipe.Instructions,
		recipe.CreatedAt, recipe.UpdatedAt)
	if err != nil {
		return apperror.NewDatabaseError("failed to create recipe", err)
	}
	return nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID int) ([]Recipe, error) {
	query := `SELECT id, owner_id, title, ingredients, instructions, created_at, updated_at
	          FROM recipes
	          WHERE owner_id = $1
	          ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list recipes", err)
	}
	defer rows.Close()

	recipes := []Recipe{}
	for rows.Next() {
		var r Recipe
		if err := rows.Scan(&r.ID, &r.OwnerID, &r.Title, &r.Ingredients, &r.Instructions, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan recipe", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read recipes", err)
	}
	return recipes, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (*Recipe, error) {
	var r Recipe
	query := `SELECT id, owner_id, title, ingredients, instructions, created_at, updated_at
	          FROM recipes
	          WHERE id = $1`
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&r.ID, &r.OwnerID, &r.Title, &r.Ingredients, &r.Instructions, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("recipe not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get recipe", err)
	}
	return &r, nil
}

func (s *PostgresStore) Update(ctx context.Context, recipe *Recipe) error {
	query := `UPDATE recipes
	          SET title = $2, ingredients = $3, instructions = $4, updated_at = $5
	          WHERE id = $1`
	tag, err := s.pool.Exec(ctx, query,
		recipe.ID, recipe.Title, recipe.Ingredients, recipe.Instructions, recipe.UpdatedAt)
	if err != nil {
		return apperror.NewDatabaseError("failed to update recipe", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("recipe not found", nil)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete recipe", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("recipe not found", nil)
	}
	return nil
}
