package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/pkg/apperrors"
	"github.com/campusops/ssis/internal/pkg/dberrors"
	"github.com/campusops/ssis/internal/pkg/helpers"
	"github.com/campusops/ssis/internal/pkg/logger"
)

var collegeSortColumns = map[string]bool{
	"college_code": true,
	"college_name": true,
}

// CollegeRepository handles college database operations
type CollegeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves a page of colleges with optional search and sorting.
// The returned total counts all matching rows regardless of pagination.
func (r *CollegeRepository) List(ctx context.Context, params ListParams) ([]models.College, int64, error) {
	var search squirrel.Sqlizer
	if params.Search != "" {
		pattern := likePattern(params.Search)
		search = squirrel.Or{
			squirrel.ILike{"college_code": pattern},
			squirrel.ILike{"college_name": pattern},
		}
	}

	countQuery := r.sb.Select("COUNT(*)").From("college")
	if search != nil {
		countQuery = countQuery.Where(search)
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count colleges query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting colleges")
		return nil, 0, fmt.Errorf("error counting colleges: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.PerPage)
	query := r.sb.Select("college_code", "college_name").
		From("college").
		OrderBy(orderClause(params.SortBy, collegeSortColumns, "college_code", params.Order)).
		Limit(uint64(limit)).
		Offset(offset)
	if search != nil {
		query = query.Where(search)
	}

	sql, args, err = query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list colleges query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list colleges query")
		return nil, 0, fmt.Errorf("error querying colleges: %w", err)
	}
	defer rows.Close()

	colleges := []models.College{}
	for rows.Next() {
		var college models.College
		if err := rows.Scan(&college.Code, &college.Name); err != nil {
			return nil, 0, fmt.Errorf("error scanning college row: %w", err)
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating college rows: %w", err)
	}

	return colleges, total, nil
}

// ListCodes retrieves all college codes ordered alphabetically
func (r *CollegeRepository) ListCodes(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("college_code").
		From("college").
		OrderBy("college_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list college codes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying college codes: %w", err)
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("error scanning college code: %w", err)
		}
		codes = append(codes, code)
	}

	return codes, rows.Err()
}

// GetByCode retrieves a college by its code
func (r *CollegeRepository) GetByCode(ctx context.Context, code string) (*models.College, error) {
	sql, args, err := r.sb.Select("college_code", "college_name").
		From("college").
		Where(squirrel.Eq{"college_code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get college query: %w", err)
	}

	college := &models.College{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&college.Code, &college.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		logger.Error().Err(err).Str("collegeCode", code).Msg("Error scanning college row")
		return nil, fmt.Errorf("error getting college by code: %w", err)
	}

	return college, nil
}

// Create creates a new college
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	sql, args, err := r.sb.Insert("college").
		Columns("college_code", "college_name").
		Values(college.Code, college.Name).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create college query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCollegeAlreadyExists
		}
		logger.Error().Err(err).Str("collegeCode", college.Code).Msg("Error executing create college query")
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// Update updates a college, optionally renaming its code. Renaming cascades
// to dependent program rows through the ON UPDATE CASCADE constraint.
func (r *CollegeRepository) Update(ctx context.Context, code string, college *models.College) error {
	newCode := college.Code
	if newCode == "" {
		newCode = code
	}

	sql, args, err := r.sb.Update("college").
		SetMap(map[string]interface{}{
			"college_code": newCode,
			"college_name": college.Name,
		}).
		Where(squirrel.Eq{"college_code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update college query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCollegeAlreadyExists
		}
		logger.Error().Err(err).Str("collegeCode", code).Msg("Error executing update college query")
		return fmt.Errorf("error updating college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	college.Code = newCode
	return nil
}

// Delete deletes a college by code. Colleges still referenced by programs
// are protected by the ON DELETE RESTRICT constraint.
func (r *CollegeRepository) Delete(ctx context.Context, code string) error {
	sql, args, err := r.sb.Delete("college").
		Where(squirrel.Eq{"college_code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete college query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCollegeHasPrograms
		}
		logger.Error().Err(err).Str("collegeCode", code).Msg("Error executing delete college query")
		return fmt.Errorf("error deleting college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}
