package repository

import (
	"context"
	"errors"
	"time"

	"devcollab/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Project struct {
	ID        uuid.UUID
	CreatorID uuid.UUID
	Title     string
	IsOpen    bool
	CreatedAt time.Time
}

// ProjectRepository resolves the optional project context of a match
// request. FindByID returns nil when the project does not exist.
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	var p Project
	err := r.db.QueryRow(ctx,
		`SELECT id, creator_id, title, is_open, created_at FROM projects WHERE id = $1`, id,
	).Scan(&p.ID, &p.CreatorID, &p.Title, &p.IsOpen, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
