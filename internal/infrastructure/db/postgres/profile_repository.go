package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	skills, err := marshalStrings(p.Skills)
	if err != nil {
		return nil, fmt.Errorf("encode skills: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, name, bio, location, whatsapp, photo_url, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
		RETURNING id, user_id, name, bio, location, whatsapp, photo_url, skills, created_at, updated_at
	`, p.UserID, p.Name, p.Bio, p.Location, p.Whatsapp, p.PhotoURL, skills)

	created, err := scanProfile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrProfileExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return created, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	skills, err := marshalStrings(p.Skills)
	if err != nil {
		return nil, fmt.Errorf("encode skills: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE profiles
		SET name = $2, bio = $3, location = $4, whatsapp = $5, photo_url = $6,
		    skills = $7::jsonb, updated_at = now()
		WHERE user_id = $1
		RETURNING id, user_id, name, bio, location, whatsapp, photo_url, skills, created_at, updated_at
	`, p.UserID, p.Name, p.Bio, p.Location, p.Whatsapp, p.PhotoURL, skills)

	updated, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, bio, location, whatsapp, photo_url, skills, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

func (r *ProfileRepository) FindDetailByUserID(ctx context.Context, userID int64) (*domain.ProfileDetail, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.user_id, p.name, p.bio, p.location, p.whatsapp, p.photo_url,
		       p.skills, p.created_at, p.updated_at, u.email, u.role
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`, userID)

	var d domain.ProfileDetail
	var skills []byte
	err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.Bio, &d.Location, &d.Whatsapp,
		&d.PhotoURL, &skills, &d.CreatedAt, &d.UpdatedAt, &d.Email, &d.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile detail: %w", err)
	}
	if d.Skills, err = unmarshalStrings(skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return &d, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var skills []byte
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Bio, &p.Location, &p.Whatsapp,
		&p.PhotoURL, &skills, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Skills, err = unmarshalStrings(skills); err != nil {
		return nil, err
	}
	return &p, nil
}

// marshalStrings encodes a string slice for a jsonb column; nil stays NULL.
func marshalStrings(values []string) (any, error) {
	if values == nil {
		return nil, nil
	}
	return json.Marshal(values)
}

func unmarshalStrings(raw []byte) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}
