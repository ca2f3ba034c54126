package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	skills, err := marshalStrings(p.SkillRequirements)
	if err != nil {
		return nil, fmt.Errorf("encode skill requirements: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (user_id, title, description, budget, skill_requirements, constraints, status)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)
		RETURNING id, user_id, title, description, budget, skill_requirements, constraints, status, created_at, updated_at
	`, p.UserID, p.Title, p.Description, p.Budget, skills, p.Constraints, p.Status)

	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return created, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	skills, err := marshalStrings(p.SkillRequirements)
	if err != nil {
		return nil, fmt.Errorf("encode skill requirements: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET title = $2, description = $3, budget = $4, skill_requirements = $5::jsonb,
		    constraints = $6, status = $7, updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, title, description, budget, skill_requirements, constraints, status, created_at, updated_at
	`, p.ID, p.Title, p.Description, p.Budget, skills, p.Constraints, p.Status)

	updated, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return updated, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, description, budget, skill_requirements, constraints, status, created_at, updated_at
		FROM projects
		WHERE id = $1
	`, id)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) FindDetailByID(ctx context.Context, id int64) (*domain.ProjectDetail, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.user_id, p.title, p.description, p.budget, p.skill_requirements,
		       p.constraints, p.status, p.created_at, p.updated_at,
		       u.email, pr.name, pr.whatsapp
		FROM projects p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN profiles pr ON pr.user_id = p.user_id
		WHERE p.id = $1
	`, id)

	detail, err := scanProjectDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project detail: %w", err)
	}
	return detail, nil
}

func (r *ProjectRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, description, budget, skill_requirements, constraints, status, created_at, updated_at
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		project, err := scanProjectRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// List serves the public project board. The total is computed with a window
// function so one round trip covers both page and count.
func (r *ProjectRepository) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.ProjectDetail, int64, error) {
	offset := (filter.Page - 1) * filter.Limit

	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.user_id, p.title, p.description, p.budget, p.skill_requirements,
		       p.constraints, p.status, p.created_at, p.updated_at,
		       u.email, pr.name, pr.whatsapp,
		       count(*) OVER () AS total
		FROM projects p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN profiles pr ON pr.user_id = p.user_id
		WHERE ($1 = '' OR p.status = $1)
		  AND ($2 = '' OR p.title ILIKE '%' || $2 || '%' OR p.description ILIKE '%' || $2 || '%')
		ORDER BY p.created_at DESC
		LIMIT $3 OFFSET $4
	`, filter.Status, filter.Keyword, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list project board: %w", err)
	}
	defer rows.Close()

	var out []domain.ProjectDetail
	var total int64
	for rows.Next() {
		var d domain.ProjectDetail
		var skills []byte
		err := rows.Scan(&d.ID, &d.UserID, &d.Title, &d.Description, &d.Budget, &skills,
			&d.Constraints, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.OwnerEmail, &d.OwnerName, &d.OwnerWhatsapp, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan project board row: %w", err)
		}
		if d.SkillRequirements, err = unmarshalStrings(skills); err != nil {
			return nil, 0, fmt.Errorf("decode skill requirements: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list project board: %w", err)
	}
	return out, total, nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var skills []byte
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Budget, &skills,
		&p.Constraints, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.SkillRequirements, err = unmarshalStrings(skills); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProjectRows(rows pgx.Rows) (*domain.Project, error) {
	return scanProject(rows)
}

func scanProjectDetail(row pgx.Row) (*domain.ProjectDetail, error) {
	var d domain.ProjectDetail
	var skills []byte
	err := row.Scan(&d.ID, &d.UserID, &d.Title, &d.Description, &d.Budget, &skills,
		&d.Constraints, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&d.OwnerEmail, &d.OwnerName, &d.OwnerWhatsapp)
	if err != nil {
		return nil, err
	}
	if d.SkillRequirements, err = unmarshalStrings(skills); err != nil {
		return nil, err
	}
	return &d, nil
}
