package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ApplyImport upserts the profile and replaces experiences and skills in a
// single transaction.
func (r *PGRepo) ApplyImport(ctx context.Context, p Portfolio) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsertProfile = `
INSERT INTO profiles (user_id, name, headline, about, available, strategy, confidence, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id) DO UPDATE SET
    name = EXCLUDED.name,
    headline = EXCLUDED.headline,
    about = EXCLUDED.about,
    available = EXCLUDED.available,
    strategy = EXCLUDED.strategy,
    confidence = EXCLUDED.confidence,
    updated_at = EXCLUDED.updated_at`

	pr := p.Profile
	if _, err := tx.ExecContext(ctx, upsertProfile,
		pr.UserID,
		pr.Name,
		pr.Headline,
		pr.About,
		pr.Available,
		pr.Strategy,
		pr.Confidence,
		pr.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM experiences WHERE user_id = $1`, pr.UserID); err != nil {
		return fmt.Errorf("clear experiences: %w", err)
	}
	for _, e := range p.Experiences {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO experiences (id, user_id, company, title, duration, sort_order) VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, pr.UserID, e.Company, e.Title, e.Duration, e.Order,
		); err != nil {
			return fmt.Errorf("insert experience: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM skills WHERE user_id = $1`, pr.UserID); err != nil {
		return fmt.Errorf("clear skills: %w", err)
	}
	for _, s := range p.Skills {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO skills (id, user_id, name, sort_order) VALUES ($1, $2, $3, $4)`,
			s.ID, pr.UserID, s.Name, s.Order,
		); err != nil {
			return fmt.Errorf("insert skill: %w", err)
		}
	}

	return tx.Commit()
}

// Get loads the profile with its ordered experiences and skills.
func (r *PGRepo) Get(ctx context.Context, userID string) (Portfolio, error) {
	const profileQuery = `
SELECT user_id, name, headline, about, available, strategy, confidence, updated_at
FROM profiles
WHERE user_id = $1`

	var p Portfolio
	err := r.DB.QueryRowContext(ctx, profileQuery, userID).Scan(
		&p.Profile.UserID,
		&p.Profile.Name,
		&p.Profile.Headline,
		&p.Profile.About,
		&p.Profile.Available,
		&p.Profile.Strategy,
		&p.Profile.Confidence,
		&p.Profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Portfolio{}, ErrNotFound
		}
		return Portfolio{}, err
	}

	p.Experiences, err = r.listExperiences(ctx, userID)
	if err != nil {
		return Portfolio{}, err
	}
	p.Skills, err = r.listSkills(ctx, userID)
	if err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

func (r *PGRepo) listExperiences(ctx context.Context, userID string) ([]Experience, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, company, title, duration, sort_order
FROM experiences
WHERE user_id = $1
ORDER BY sort_order ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Experience{}
	for rows.Next() {
		e := Experience{UserID: userID}
		if err := rows.Scan(&e.ID, &e.Company, &e.Title, &e.Duration, &e.Order); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PGRepo) listSkills(ctx context.Context, userID string) ([]Skill, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, name, sort_order
FROM skills
WHERE user_id = $1
ORDER BY sort_order ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Skill{}
	for rows.Next() {
		s := Skill{UserID: userID}
		if err := rows.Scan(&s.ID, &s.Name, &s.Order); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
