package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

type DeveloperRepository struct {
	pool *pgxpool.Pool
}

func NewDeveloperRepository(pool *pgxpool.Pool) *DeveloperRepository {
	return &DeveloperRepository{pool: pool}
}

// List returns every developer account with profile and portfolios attached.
// Portfolios are batch-loaded in a second query to avoid a row explosion on
// the join.
func (r *DeveloperRepository) List(ctx context.Context) ([]domain.Developer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.email, u.role, u.created_at,
		       p.id, p.user_id, p.name, p.bio, p.location, p.whatsapp, p.photo_url,
		       p.skills, p.created_at, p.updated_at
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.role = $1
		ORDER BY u.created_at DESC
	`, domain.RoleDeveloper)
	if err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	defer rows.Close()

	var developers []domain.Developer
	var ids []int64
	for rows.Next() {
		dev, err := scanDeveloper(rows)
		if err != nil {
			return nil, fmt.Errorf("scan developer: %w", err)
		}
		developers = append(developers, *dev)
		ids = append(ids, dev.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	if len(developers) == 0 {
		return developers, nil
	}

	portfolios, err := r.portfoliosByUser(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range developers {
		developers[i].Portfolios = portfolios[developers[i].ID]
	}
	return developers, nil
}

func (r *DeveloperRepository) FindByID(ctx context.Context, id int64) (*domain.Developer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT u.id, u.email, u.role, u.created_at,
		       p.id, p.user_id, p.name, p.bio, p.location, p.whatsapp, p.photo_url,
		       p.skills, p.created_at, p.updated_at
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.id = $1 AND u.role = $2
	`, id, domain.RoleDeveloper)

	dev, err := scanDeveloper(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("find developer: %w", err)
	}

	portfolios, err := r.portfoliosByUser(ctx, []int64{dev.ID})
	if err != nil {
		return nil, err
	}
	dev.Portfolios = portfolios[dev.ID]
	return dev, nil
}

func (r *DeveloperRepository) portfoliosByUser(ctx context.Context, userIDs []int64) (map[int64][]domain.Portfolio, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, description, link, image_url, created_at, updated_at
		FROM portfolios
		WHERE user_id = ANY($1)
		ORDER BY created_at DESC
	`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load developer portfolios: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.Portfolio)
	for rows.Next() {
		var p domain.Portfolio
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Link,
			&p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan developer portfolio: %w", err)
		}
		out[p.UserID] = append(out[p.UserID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load developer portfolios: %w", err)
	}
	return out, nil
}

func scanDeveloper(row pgx.Row) (*domain.Developer, error) {
	var dev domain.Developer
	var (
		profileID *int64
		userID    *int64
		name      *string
		bio       *string
		location  *string
		whatsapp  *string
		photoURL  *string
		skills    []byte
		createdAt *time.Time
		updatedAt *time.Time
	)

	err := row.Scan(&dev.ID, &dev.Email, &dev.Role, &dev.CreatedAt,
		&profileID, &userID, &name, &bio, &location, &whatsapp, &photoURL,
		&skills, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if profileID != nil {
		profile := domain.Profile{
			ID:       *profileID,
			UserID:   *userID,
			Bio:      bio,
			Location: location,
			Whatsapp: whatsapp,
			PhotoURL: photoURL,
		}
		if name != nil {
			profile.Name = *name
		}
		if createdAt != nil {
			profile.CreatedAt = *createdAt
		}
		if updatedAt != nil {
			profile.UpdatedAt = *updatedAt
		}
		if profile.Skills, err = unmarshalStrings(skills); err != nil {
			return nil, err
		}
		dev.Profile = &profile
	}
	return &dev, nil
}
