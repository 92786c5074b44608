package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kapu/brandlens-go/internal/domain"
	"github.com/kapu/brandlens-go/internal/service/database"
	"go.uber.org/zap"
)

// BrandRepository reads brand report data from PostgreSQL. Visibility rows
// come back in their stored rank order; the cards keep that order.
type BrandRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewBrandRepository(postgres *database.PostgresService, logger *zap.Logger) *BrandRepository {
	return &BrandRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

// GetBrand retrieves a brand by ID. Unknown IDs return nil, nil.
func (r *BrandRepository) GetBrand(ctx context.Context, brandID string) (*domain.Brand, error) {
	query := `
		SELECT id, name, description, updated_at
		FROM brands
		WHERE id = $1
		LIMIT 1
	`

	var brand domain.Brand
	var description sql.NullString

	err := r.db.QueryRowContext(ctx, query, brandID).Scan(
		&brand.ID, &brand.Name, &description, &brand.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query brand: %w", err)
	}

	brand.Description = description.String
	return &brand, nil
}

// UpdateDescription persists a new description and returns the updated brand.
// Unknown IDs return nil, nil.
func (r *BrandRepository) UpdateDescription(ctx context.Context, brandID, description string) (*domain.Brand, error) {
	query := `
		UPDATE brands
		SET description = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, updated_at
	`

	var brand domain.Brand
	var desc sql.NullString

	err := r.db.QueryRowContext(ctx, query, brandID, description).Scan(
		&brand.ID, &brand.Name, &desc, &brand.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update brand description: %w", err)
	}

	brand.Description = desc.String
	r.logger.Info("Brand description updated",
		zap.String("brand_id", brand.ID),
	)
	return &brand, nil
}

func (r *BrandRepository) GetPersonaVisibility(ctx context.Context, brandID string) ([]domain.PersonaVisibility, error) {
	query := `
		SELECT persona_name, visibility
		FROM persona_visibility
		WHERE brand_id = $1
		ORDER BY rank
	`

	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to query persona visibility: %w", err)
	}
	defer rows.Close()

	result := make([]domain.PersonaVisibility, 0)
	for rows.Next() {
		var pv domain.PersonaVisibility
		if err := rows.Scan(&pv.Name, &pv.Visibility); err != nil {
			return nil, fmt.Errorf("failed to scan persona visibility: %w", err)
		}
		result = append(result, pv)
	}
	return result, rows.Err()
}

func (r *BrandRepository) GetTopicVisibility(ctx context.Context, brandID string) ([]domain.TopicVisibility, error) {
	query := `
		SELECT topic_name, visibility
		FROM topic_visibility
		WHERE brand_id = $1
		ORDER BY rank
	`

	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to query topic visibility: %w", err)
	}
	defer rows.Close()

	result := make([]domain.TopicVisibility, 0)
	for rows.Next() {
		var tv domain.TopicVisibility
		if err := rows.Scan(&tv.Name, &tv.Visibility); err != nil {
			return nil, fmt.Errorf("failed to scan topic visibility: %w", err)
		}
		result = append(result, tv)
	}
	return result, rows.Err()
}

func (r *BrandRepository) GetModelVisibility(ctx context.Context, brandID string) ([]domain.ModelVisibility, error) {
	query := `
		SELECT model_name, visibility, logo
		FROM model_visibility
		WHERE brand_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to query model visibility: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ModelVisibility, 0)
	for rows.Next() {
		var mv domain.ModelVisibility
		var logo sql.NullString
		if err := rows.Scan(&mv.Name, &mv.Visibility, &logo); err != nil {
			return nil, fmt.Errorf("failed to scan model visibility: %w", err)
		}
		mv.Logo = logo.String
		result = append(result, mv)
	}
	return result, rows.Err()
}

func (r *BrandRepository) GetTopSources(ctx context.Context, brandID string) ([]domain.TopSource, error) {
	query := `
		SELECT domain, mention_count
		FROM top_sources
		WHERE brand_id = $1
		ORDER BY mention_count DESC
	`

	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to query top sources: %w", err)
	}
	defer rows.Close()

	result := make([]domain.TopSource, 0)
	for rows.Next() {
		var ts domain.TopSource
		if err := rows.Scan(&ts.Domain, &ts.Count); err != nil {
			return nil, fmt.Errorf("failed to scan top source: %w", err)
		}
		result = append(result, ts)
	}
	return result, rows.Err()
}

func (r *BrandRepository) GetSourceTypes(ctx context.Context, brandID string) ([]domain.SourceType, error) {
	query := `
		SELECT category, mention_count
		FROM source_types
		WHERE brand_id = $1
		ORDER BY mention_count DESC
	`

	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to query source types: %w", err)
	}
	defer rows.Close()

	result := make([]domain.SourceType, 0)
	for rows.Next() {
		var st domain.SourceType
		if err := rows.Scan(&st.Category, &st.Count); err != nil {
			return nil, fmt.Errorf("failed to scan source type: %w", err)
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

func (r *BrandRepository) GetMatrixCells(ctx context.Context, brandID string) ([]domain.MatrixCell, error) {
	query := `
		SELECT persona_name, topic_name, score
		FROM matrix_cells
		WHERE brand_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matrix cells: %w", err)
	}
	defer rows.Close()

	result := make([]domain.MatrixCell, 0)
	for rows.Next() {
		var cell domain.MatrixCell
		if err := rows.Scan(&cell.PersonaName, &cell.TopicName, &cell.Score); err != nil {
			return nil, fmt.Errorf("failed to scan matrix cell: %w", err)
		}
		result = append(result, cell)
	}
	return result, rows.Err()
}
