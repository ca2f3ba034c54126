package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

type PortfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{pool: pool}
}

func (r *PortfolioRepository) Create(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO portfolios (user_id, title, description, link, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, description, link, image_url, created_at, updated_at
	`, p.UserID, p.Title, p.Description, p.Link, p.ImageURL)

	created, err := scanPortfolio(row)
	if err != nil {
		return nil, fmt.Errorf("insert portfolio: %w", err)
	}
	return created, nil
}

func (r *PortfolioRepository) Update(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE portfolios
		SET title = $2, description = $3, link = $4, image_url = $5, updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, title, description, link, image_url, created_at, updated_at
	`, p.ID, p.Title, p.Description, p.Link, p.ImageURL)

	updated, err := scanPortfolio(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("update portfolio: %w", err)
	}
	return updated, nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete portfolio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPortfolioNotFound
	}
	return nil
}

func (r *PortfolioRepository) FindByID(ctx context.Context, id int64) (*domain.Portfolio, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, description, link, image_url, created_at, updated_at
		FROM portfolios
		WHERE id = $1
	`, id)

	portfolio, err := scanPortfolio(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("find portfolio: %w", err)
	}
	return portfolio, nil
}

func (r *PortfolioRepository) FindDetailByID(ctx context.Context, id int64) (*domain.PortfolioDetail, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.user_id, p.title, p.description, p.link, p.image_url,
		       p.created_at, p.updated_at, u.email, pr.name
		FROM portfolios p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN profiles pr ON pr.user_id = p.user_id
		WHERE p.id = $1
	`, id)

	var d domain.PortfolioDetail
	err := row.Scan(&d.ID, &d.UserID, &d.Title, &d.Description, &d.Link, &d.ImageURL,
		&d.CreatedAt, &d.UpdatedAt, &d.OwnerEmail, &d.OwnerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("find portfolio detail: %w", err)
	}
	return &d, nil
}

func (r *PortfolioRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Portfolio, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, description, link, image_url, created_at, updated_at
		FROM portfolios
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	defer rows.Close()

	var out []domain.Portfolio
	for rows.Next() {
		var p domain.Portfolio
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Link,
			&p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan portfolio: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	return out, nil
}

func scanPortfolio(row pgx.Row) (*domain.Portfolio, error) {
	var p domain.Portfolio
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Link,
		&p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
