package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/app/repositories"
	"github.com/campusops/ssis/internal/pkg/apperrors"
	"github.com/campusops/ssis/internal/pkg/helpers"
)

// ProgramService defines the interface for program-related operations
type ProgramService interface {
	ListPrograms(ctx context.Context, params repositories.ProgramListParams) ([]models.Program, int64, error)
	ListProgramCodes(ctx context.Context) ([]string, error)
	GetProgram(ctx context.Context, code string) (*models.Program, error)
	CreateProgram(ctx context.Context, program *models.Program) error
	UpdateProgram(ctx context.Context, code string, program *models.Program) error
	DeleteProgram(ctx context.Context, code string) error
}

// programServiceImpl implements the ProgramService interface
type programServiceImpl struct {
	programRepo ProgramRepo
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo ProgramRepo) ProgramService {
	return &programServiceImpl{
		programRepo: programRepo,
	}
}

// validateProgram validates program data before database operations
func (s *programServiceImpl) validateProgram(program *models.Program) error {
	if program == nil {
		return fmt.Errorf("%w: program is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(program.Code) == "" {
		return fmt.Errorf("%w: program_code cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(program.Name) == "" {
		return fmt.Errorf("%w: program_name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(program.CollegeCode) == "" {
		return fmt.Errorf("%w: college_code cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// ListPrograms retrieves a page of programs with the total row count
func (s *programServiceImpl) ListPrograms(ctx context.Context, params repositories.ProgramListParams) ([]models.Program, int64, error) {
	params.Page, params.PerPage = helpers.NormalizePagination(params.Page, params.PerPage)

	programs, total, err := s.programRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, total, nil
}

// ListProgramCodes retrieves all program codes without pagination
func (s *programServiceImpl) ListProgramCodes(ctx context.Context) ([]string, error) {
	codes, err := s.programRepo.ListCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving program codes: %w", err)
	}
	return codes, nil
}

// GetProgram retrieves a single program by code
func (s *programServiceImpl) GetProgram(ctx context.Context, code string) (*models.Program, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: program_code cannot be empty", apperrors.ErrValidationFailed)
	}

	program, err := s.programRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// CreateProgram creates a new program
func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.Program) error {
	if err := s.validateProgram(program); err != nil {
		return err
	}
	return s.programRepo.Create(ctx, program)
}

// UpdateProgram updates an existing program. Supplying a different code in
// the payload renames the program; student references follow the rename.
func (s *programServiceImpl) UpdateProgram(ctx context.Context, code string, program *models.Program) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: program_code cannot be empty", apperrors.ErrValidationFailed)
	}
	if program == nil || strings.TrimSpace(program.Name) == "" {
		return fmt.Errorf("%w: program_name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(program.CollegeCode) == "" {
		return fmt.Errorf("%w: college_code cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.programRepo.Update(ctx, code, program)
}

// DeleteProgram deletes a program by code
func (s *programServiceImpl) DeleteProgram(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: program_code cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.programRepo.Delete(ctx, code)
}
