package postgres

import (
	"context"
	"fmt"
	"time"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/repository"
)

type toolRepository struct {
	db DBTX
}

func NewToolRepository(db DBTX) repository.ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `t.id, t.name, t.asset_tag, t.category_id, COALESCE(c.name, ''), t.status,
	t.purchase_date, COALESCE(t.location, ''), COALESCE(t.image_path, ''), t.created_on, t.updated_on`

func scanTool(row interface{ Scan(...any) error }) (*domain.Tool, error) {
	t := &domain.Tool{}
	err := row.Scan(&t.ID, &t.Name, &t.AssetTag, &t.CategoryID, &t.CategoryName, &t.Status,
		&t.PurchaseDate, &t.Location, &t.ImagePath, &t.CreatedOn, &t.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (name, asset_tag, category_id, status, purchase_date, location, image_path, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, t.Name, t.AssetTag, t.CategoryID, t.Status,
		t.PurchaseDate, t.Location, t.ImagePath, now, now).Scan(&t.ID)
	return translate(err, "tool")
}

func (r *toolRepository) GetByID(ctx context.Context, id int64) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t LEFT JOIN categories c ON t.category_id = c.id WHERE t.id = $1`
	t, err := scanTool(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "tool")
	}
	return t, nil
}

// GetByIDForUpdate locks the tool row until the surrounding transaction ends.
// Serializes concurrent checkouts of the same tool so at most one passes the
// availability check.
func (r *toolRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t LEFT JOIN categories c ON t.category_id = c.id
	          WHERE t.id = $1 FOR UPDATE OF t`
	t, err := scanTool(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "tool")
	}
	return t, nil
}

func (r *toolRepository) GetByAssetTag(ctx context.Context, assetTag string) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t LEFT JOIN categories c ON t.category_id = c.id WHERE t.asset_tag = $1`
	t, err := scanTool(r.db.QueryRowContext(ctx, query, assetTag))
	if err != nil {
		return nil, translate(err, "tool")
	}
	return t, nil
}

func (r *toolRepository) List(ctx context.Context, search string) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t LEFT JOIN categories c ON t.category_id = c.id`
	args := []any{}
	if search != "" {
		query += ` WHERE t.name ILIKE $1 OR t.asset_tag ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY t.name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}

func (r *toolRepository) ListByStatus(ctx context.Context, status domain.ToolStatus, limit int) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t LEFT JOIN categories c ON t.category_id = c.id
	          WHERE t.status = $1 ORDER BY t.updated_on DESC`
	args := []any{status}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, asset_tag=$2, category_id=$3, status=$4, purchase_date=$5,
	          location=$6, image_path=$7, updated_on=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.AssetTag, t.CategoryID, t.Status,
		t.PurchaseDate, t.Location, t.ImagePath, time.Now(), t.ID)
	if err != nil {
		return translate(err, "tool")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("tool %d", t.ID)
	}
	return nil
}

func (r *toolRepository) UpdateStatus(ctx context.Context, id int64, status domain.ToolStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tools SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("tool %d", id)
	}
	return nil
}

func (r *toolRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("tool %d", id)
	}
	return nil
}

func (r *toolRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM tools`).Scan(&count)
	return count, err
}

func (r *toolRepository) CountByStatus(ctx context.Context, status domain.ToolStatus) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM tools WHERE status = $1`, status).Scan(&count)
	return count, err
}
