package postgres

import (
	"context"
	"time"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/repository"
)

type categoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (name, created_on) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.Name, time.Now()).Scan(&c.ID)
	return translate(err, "category")
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c := &domain.Category{}
	query := `SELECT id, name, created_on FROM categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedOn)
	if err != nil {
		return nil, translate(err, "category")
	}
	return c, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	c := &domain.Category{}
	query := `SELECT id, name, created_on FROM categories WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&c.ID, &c.Name, &c.CreatedOn)
	if err != nil {
		return nil, translate(err, "category")
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_on FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedOn); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return translate(err, "category")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("category %d", id)
	}
	return nil
}
