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

var programSortColumns = map[string]bool{
	"program_code": true,
	"program_name": true,
	"college_code": true,
}

// ProgramListParams extends the common list parameters with the
// college_code filter.
type ProgramListParams struct {
	ListParams
	CollegeCode string
}

// ProgramRepository handles program database operations
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func programFilter(params ProgramListParams) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	if params.Search != "" {
		pattern := likePattern(params.Search)
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"program_code": pattern},
			squirrel.ILike{"program_name": pattern},
			squirrel.ILike{"college_code": pattern},
		})
	}
	if params.CollegeCode != "" {
		conds = append(conds, squirrel.Eq{"college_code": params.CollegeCode})
	}
	return conds
}

// List retrieves a page of programs with optional search, filtering and sorting
func (r *ProgramRepository) List(ctx context.Context, params ProgramListParams) ([]models.Program, int64, error) {
	conds := programFilter(params)

	countQuery := r.sb.Select("COUNT(*)").From("program")
	for _, cond := range conds {
		countQuery = countQuery.Where(cond)
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count programs query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting programs")
		return nil, 0, fmt.Errorf("error counting programs: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.PerPage)
	query := r.sb.Select("program_code", "program_name", "college_code").
		From("program").
		OrderBy(orderClause(params.SortBy, programSortColumns, "program_code", params.Order)).
		Limit(uint64(limit)).
		Offset(offset)
	for _, cond := range conds {
		query = query.Where(cond)
	}

	sql, args, err = query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list programs query")
		return nil, 0, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []models.Program{}
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(&program.Code, &program.Name, &program.CollegeCode); err != nil {
			return nil, 0, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, total, nil
}

// ListCodes retrieves all program codes ordered alphabetically
func (r *ProgramRepository) ListCodes(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("program_code").
		From("program").
		OrderBy("program_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list program codes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying program codes: %w", err)
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("error scanning program code: %w", err)
		}
		codes = append(codes, code)
	}

	return codes, rows.Err()
}

// GetByCode retrieves a program by its code
func (r *ProgramRepository) GetByCode(ctx context.Context, code string) (*models.Program, error) {
	sql, args, err := r.sb.Select("program_code", "program_name", "college_code").
		From("program").
		Where(squirrel.Eq{"program_code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program := &models.Program{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&program.Code, &program.Name, &program.CollegeCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		logger.Error().Err(err).Str("programCode", code).Msg("Error scanning program row")
		return nil, fmt.Errorf("error getting program by code: %w", err)
	}

	return program, nil
}

// Create creates a new program. The referenced college must exist; the
// foreign key constraint reports a conflict otherwise.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	return r.createIn(ctx, r.db, program)
}

// CreateTx creates a new program inside an existing transaction
func (r *ProgramRepository) CreateTx(ctx context.Context, tx pgx.Tx, program *models.Program) error {
	return r.createIn(ctx, tx, program)
}

func (r *ProgramRepository) createIn(ctx context.Context, q execer, program *models.Program) error {
	sql, args, err := r.sb.Insert("program").
		Columns("program_code", "program_name", "college_code").
		Values(program.Code, program.Name, program.CollegeCode).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create program query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrProgramAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("college_code does not reference an existing college")
		}
		logger.Error().Err(err).Str("programCode", program.Code).Msg("Error executing create program query")
		return fmt.Errorf("error creating program: %w", err)
	}

	return nil
}

// Update updates a program, optionally renaming its code. Student rows
// referencing the old code follow through the ON UPDATE CASCADE constraint.
func (r *ProgramRepository) Update(ctx context.Context, code string, program *models.Program) error {
	newCode := program.Code
	if newCode == "" {
		newCode = code
	}

	sql, args, err := r.sb.Update("program").
		SetMap(map[string]interface{}{
			"program_code": newCode,
			"program_name": program.Name,
			"college_code": program.CollegeCode,
		}).
		Where(squirrel.Eq{"program_code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrProgramAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("college_code does not reference an existing college")
		}
		logger.Error().Err(err).Str("programCode", code).Msg("Error executing update program query")
		return fmt.Errorf("error updating program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	program.Code = newCode
	return nil
}

// Delete deletes a program by code. Programs still referenced by students
// are protected by the ON DELETE RESTRICT constraint.
func (r *ProgramRepository) Delete(ctx context.Context, code string) error {
	sql, args, err := r.sb.Delete("program").
		Where(squirrel.Eq{"program_code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProgramHasStudents
		}
		logger.Error().Err(err).Str("programCode", code).Msg("Error executing delete program query")
		return fmt.Errorf("error deleting program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}
