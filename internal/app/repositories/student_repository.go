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

var studentSortColumns = map[string]bool{
	"student_id":   true,
	"first_name":   true,
	"last_name":    true,
	"year_level":   true,
	"gender":       true,
	"program_code": true,
}

// StudentListParams extends the common list parameters with the student
// specific filters. Slice filters are ORed within themselves and ANDed
// against everything else.
type StudentListParams struct {
	ListParams
	ProgramCode string
	YearLevels  []int
	Genders     []string
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func studentFilter(params StudentListParams) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	if params.Search != "" {
		pattern := likePattern(params.Search)
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"student_id": pattern},
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"gender": pattern},
			squirrel.ILike{"program_code": pattern},
		})
	}
	if params.ProgramCode != "" {
		conds = append(conds, squirrel.Eq{"program_code": params.ProgramCode})
	}
	if len(params.YearLevels) > 0 {
		conds = append(conds, squirrel.Eq{"year_level": params.YearLevels})
	}
	if len(params.Genders) > 0 {
		conds = append(conds, squirrel.Eq{"gender": params.Genders})
	}
	return conds
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.StudentID,
		&student.FirstName,
		&student.LastName,
		&student.YearLevel,
		&student.Gender,
		&student.ProgramCode,
		&student.PhotoURL,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// List retrieves a page of students with optional search, filtering and sorting
func (r *StudentRepository) List(ctx context.Context, params StudentListParams) ([]models.Student, int64, error) {
	conds := studentFilter(params)

	countQuery := r.sb.Select("COUNT(*)").From("student")
	for _, cond := range conds {
		countQuery = countQuery.Where(cond)
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.PerPage)
	query := r.sb.Select(
		"student_id", "first_name", "last_name", "year_level",
		"gender", "program_code", "photo_url",
	).
		From("student").
		OrderBy(orderClause(params.SortBy, studentSortColumns, "student_id", params.Order)).
		Limit(uint64(limit)).
		Offset(offset)
	for _, cond := range conds {
		query = query.Where(cond)
	}

	sql, args, err = query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"student_id", "first_name", "last_name", "year_level",
		"gender", "program_code", "photo_url",
	).
		From("student").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("student").
		Columns("student_id", "first_name", "last_name", "year_level", "gender", "program_code").
		Values(student.StudentID, student.FirstName, student.LastName, student.YearLevel, student.Gender, student.ProgramCode).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("program_code does not reference an existing program")
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update updates a student's editable fields
func (r *StudentRepository) Update(ctx context.Context, studentID string, student *models.Student) error {
	sql, args, err := r.sb.Update("student").
		SetMap(map[string]interface{}{
			"first_name":   student.FirstName,
			"last_name":    student.LastName,
			"year_level":   student.YearLevel,
			"gender":       student.Gender,
			"program_code": student.ProgramCode,
		}).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("program_code does not reference an existing program")
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdatePhotoURL sets the stored photo URL for a student
func (r *StudentRepository) UpdatePhotoURL(ctx context.Context, studentID, photoURL string) error {
	sql, args, err := r.sb.Update("student").
		Set("photo_url", photoURL).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update photo URL query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing update photo URL query")
		return fmt.Errorf("error updating photo URL: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	sql, args, err := r.sb.Delete("student").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
