package repository

import (
	"context"
	"errors"

	"devcollab/internal/database"
	"devcollab/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type MatchRepository interface {
	Create(ctx context.Context, m match.Request) error
	ExistsPending(ctx context.Context, requesterID, recipientID uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (match.Request, error)
	FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]match.Request, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]match.Request, error)
	FindReceivedByStatus(ctx context.Context, recipientID uuid.UUID, status match.Status) ([]match.Request, error)
	UpdateResponse(ctx context.Context, m match.Request) error
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

const matchColumns = `id, requester_id, recipient_id, project_id, score, explanation,
	status, message, created_at, updated_at, responded_at`

func (r *PostgresMatchRepository) Create(ctx context.Context, m match.Request) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO matches (id, requester_id, recipient_id, project_id, score, explanation, status, message, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		m.ID, m.RequesterID, m.RecipientID, m.ProjectID, m.Score, m.Explanation,
		m.Status, m.Message, m.CreatedAt, m.UpdatedAt,
	)
	if isUniqueViolation(err) {
		// The partial unique index on (requester_id, recipient_id) WHERE
		// status = 'PENDING' carries the check-then-create race.
		return match.ErrDuplicatePending
	}
	return err
}

func (r *PostgresMatchRepository) ExistsPending(ctx context.Context, requesterID, recipientID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM matches
			WHERE requester_id = $1 AND recipient_id = $2 AND status = $3
		)`,
		requesterID, recipientID, match.StatusPending,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (match.Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]match.Request, error) {
	return r.queryMatches(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE recipient_id = $1 ORDER BY created_at DESC`,
		recipientID)
}

func (r *PostgresMatchRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]match.Request, error) {
	return r.queryMatches(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE requester_id = $1 ORDER BY created_at DESC`,
		requesterID)
}

func (r *PostgresMatchRepository) FindReceivedByStatus(ctx context.Context, recipientID uuid.UUID, status match.Status) ([]match.Request, error) {
	return r.queryMatches(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE recipient_id = $1 AND status = $2 ORDER BY created_at DESC`,
		recipientID, status)
}

// UpdateResponse persists a status transition. Score and explanation are
// immutable after creation and deliberately absent from the statement.
func (r *PostgresMatchRepository) UpdateResponse(ctx context.Context, m match.Request) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE matches SET status = $2, message = $3, updated_at = $4, responded_at = $5 WHERE id = $1`,
		m.ID, m.Status, m.Message, m.UpdatedAt, m.RespondedAt,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return match.ErrNotFound
	}
	return nil
}

func (r *PostgresMatchRepository) queryMatches(ctx context.Context, query string, args ...any) ([]match.Request, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Request, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type matchRow interface {
	Scan(dest ...any) error
}

func scanMatch(row matchRow) (match.Request, error) {
	var m match.Request
	err := row.Scan(
		&m.ID, &m.RequesterID, &m.RecipientID, &m.ProjectID, &m.Score, &m.Explanation,
		&m.Status, &m.Message, &m.CreatedAt, &m.UpdatedAt, &m.RespondedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Request{}, match.ErrNotFound
		}
		return match.Request{}, err
	}
	return m, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
