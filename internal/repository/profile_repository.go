package repository

import (
	"context"
	"errors"

	"devcollab/internal/database"
	"devcollab/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository assembles fully materialized profile snapshots. The
// matching engine never queries storage itself; everything it needs is
// loaded here first.
type ProfileRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (profile.Profile, error)
	ListActive(ctx context.Context) ([]profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, full_name, bio, experience_level, timezone, hours_per_week
		 FROM users WHERE id = $1 AND active`, id)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}

	if err := r.attachDetails(ctx, &p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) ListActive(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, full_name, bio, experience_level, timezone, hours_per_week
		 FROM users WHERE active ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range profiles {
		if err := r.attachDetails(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

type profileRow interface {
	Scan(dest ...any) error
}

func scanProfile(row profileRow) (profile.Profile, error) {
	var p profile.Profile
	var level *string
	if err := row.Scan(&p.ID, &p.FullName, &p.Bio, &level, &p.Timezone, &p.HoursPerWeek); err != nil {
		return profile.Profile{}, err
	}
	if level != nil {
		if parsed, ok := profile.ParseExperienceLevel(*level); ok {
			p.ExperienceLevel = parsed
		}
	}
	return p, nil
}

func (r *PostgresProfileRepository) attachDetails(ctx context.Context, p *profile.Profile) error {
	skills, err := r.userSkills(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Skills = skills

	interests, err := r.userInterests(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Interests = interests

	titles, err := r.recentProjectTitles(ctx, p.ID)
	if err != nil {
		return err
	}
	p.RecentProjects = titles

	return nil
}

func (r *PostgresProfileRepository) userSkills(ctx context.Context, userID uuid.UUID) ([]profile.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name FROM skills s
		 JOIN user_skills us ON us.skill_id = s.id
		 WHERE us.user_id = $1 ORDER BY s.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]profile.Skill, 0)
	for rows.Next() {
		var s profile.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *PostgresProfileRepository) userInterests(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT interest FROM user_interests WHERE user_id = $1 ORDER BY interest`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interests := make([]string, 0)
	for rows.Next() {
		var it string
		if err := rows.Scan(&it); err != nil {
			return nil, err
		}
		interests = append(interests, it)
	}
	return interests, rows.Err()
}

func (r *PostgresProfileRepository) recentProjectTitles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT title FROM projects WHERE creator_id = $1 ORDER BY created_at DESC LIMIT 3`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make([]string, 0, 3)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}
