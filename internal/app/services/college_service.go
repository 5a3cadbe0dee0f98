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

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	ListColleges(ctx context.Context, params repositories.ListParams) ([]models.College, int64, error)
	ListCollegeCodes(ctx context.Context) ([]string, error)
	GetCollege(ctx context.Context, code string) (*models.College, error)
	CreateCollege(ctx context.Context, college *models.College) error
	UpdateCollege(ctx context.Context, code string, college *models.College) error
	DeleteCollege(ctx context.Context, code string) error
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo CollegeRepo
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo CollegeRepo) CollegeService {
	return &collegeServiceImpl{
		collegeRepo: collegeRepo,
	}
}

// validateCollege validates college data before database operations
func (s *collegeServiceImpl) validateCollege(college *models.College) error {
	if college == nil {
		return fmt.Errorf("%w: college is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(college.Code) == "" {
		return fmt.Errorf("%w: college_code cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(college.Name) == "" {
		return fmt.Errorf("%w: college_name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// ListColleges retrieves a page of colleges with the total row count
func (s *collegeServiceImpl) ListColleges(ctx context.Context, params repositories.ListParams) ([]models.College, int64, error) {
	params.Page, params.PerPage = helpers.NormalizePagination(params.Page, params.PerPage)

	colleges, total, err := s.collegeRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, total, nil
}

// ListCollegeCodes retrieves all college codes without pagination
func (s *collegeServiceImpl) ListCollegeCodes(ctx context.Context) ([]string, error) {
	codes, err := s.collegeRepo.ListCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving college codes: %w", err)
	}
	return codes, nil
}

// GetCollege retrieves a single college by code
func (s *collegeServiceImpl) GetCollege(ctx context.Context, code string) (*models.College, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: college_code cannot be empty", apperrors.ErrValidationFailed)
	}

	college, err := s.collegeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return college, nil
}

// CreateCollege creates a new college
func (s *collegeServiceImpl) CreateCollege(ctx context.Context, college *models.College) error {
	if err := s.validateCollege(college); err != nil {
		return err
	}
	return s.collegeRepo.Create(ctx, college)
}

// UpdateCollege updates an existing college. Supplying a different code in
// the payload renames the college; program references follow the rename.
func (s *collegeServiceImpl) UpdateCollege(ctx context.Context, code string, college *models.College) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: college_code cannot be empty", apperrors.ErrValidationFailed)
	}
	if college == nil || strings.TrimSpace(college.Name) == "" {
		return fmt.Errorf("%w: college_name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.collegeRepo.Update(ctx, code, college)
}

// DeleteCollege deletes a college by code
func (s *collegeServiceImpl) DeleteCollege(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: college_code cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.collegeRepo.Delete(ctx, code)
}
