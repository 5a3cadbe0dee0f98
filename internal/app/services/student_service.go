package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/app/repositories"
	"github.com/campusops/ssis/internal/pkg/apperrors"
	"github.com/campusops/ssis/internal/pkg/filestorage"
	"github.com/campusops/ssis/internal/pkg/helpers"
	"github.com/campusops/ssis/internal/pkg/logger"
)

var allowedPhotoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	ListStudents(ctx context.Context, params repositories.StudentListParams) ([]models.Student, int64, error)
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	UpdateStudent(ctx context.Context, studentID string, student *models.Student) error
	DeleteStudent(ctx context.Context, studentID string) error
	UploadPhoto(ctx context.Context, studentID string, file *multipart.FileHeader) (string, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentRepo
	storage     filestorage.FileStorage
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepo, storage filestorage.FileStorage) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		storage:     storage,
	}
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.StudentID) == "" {
		return fmt.Errorf("%w: student_id cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.FirstName) == "" {
		return fmt.Errorf("%w: first_name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: last_name cannot be empty", apperrors.ErrValidationFailed)
	}
	if student.YearLevel < 1 {
		return fmt.Errorf("%w: year_level must be positive", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.Gender) == "" {
		return fmt.Errorf("%w: gender cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.ProgramCode) == "" {
		return fmt.Errorf("%w: program_code cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// ListStudents retrieves a page of students with the total row count
func (s *studentServiceImpl) ListStudents(ctx context.Context, params repositories.StudentListParams) ([]models.Student, int64, error) {
	params.Page, params.PerPage = helpers.NormalizePagination(params.Page, params.PerPage)

	students, total, err := s.studentRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, total, nil
}

// GetStudent retrieves a single student by ID
func (s *studentServiceImpl) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("%w: student_id cannot be empty", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}
	return s.studentRepo.Create(ctx, student)
}

// UpdateStudent updates an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID string, student *models.Student) error {
	if strings.TrimSpace(studentID) == "" {
		return fmt.Errorf("%w: student_id cannot be empty", apperrors.ErrValidationFailed)
	}
	student.StudentID = studentID
	if err := s.validateStudent(student); err != nil {
		return err
	}
	return s.studentRepo.Update(ctx, studentID, student)
}

// DeleteStudent deletes a student and removes any stored photo
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID string) error {
	if strings.TrimSpace(studentID) == "" {
		return fmt.Errorf("%w: student_id cannot be empty", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, studentID); err != nil {
		return err
	}

	if student.PhotoURL != nil {
		if err := s.storage.DeleteFile(*student.PhotoURL); err != nil {
			logger.Warn().Err(err).Str("studentID", studentID).Msg("Failed to remove student photo file")
		}
	}

	return nil
}

// UploadPhoto stores a profile photo for a student and records its URL.
// A previously stored photo is replaced.
func (s *studentServiceImpl) UploadPhoto(ctx context.Context, studentID string, file *multipart.FileHeader) (string, error) {
	if strings.TrimSpace(studentID) == "" {
		return "", fmt.Errorf("%w: student_id cannot be empty", apperrors.ErrValidationFailed)
	}
	if file == nil {
		return "", fmt.Errorf("%w: no file provided", apperrors.ErrValidationFailed)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExtensions[ext] {
		return "", fmt.Errorf("%w: file type %q is not allowed", apperrors.ErrValidationFailed, ext)
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s%s", studentID, uuid.New().String()[:8], ext)
	photoURL, err := s.storage.SaveFile(file, filename)
	if err != nil {
		return "", fmt.Errorf("error saving photo: %w", err)
	}

	if err := s.studentRepo.UpdatePhotoURL(ctx, studentID, photoURL); err != nil {
		if delErr := s.storage.DeleteFile(photoURL); delErr != nil {
			logger.Warn().Err(delErr).Str("studentID", studentID).Msg("Failed to remove orphaned photo file")
		}
		return "", err
	}

	if student.PhotoURL != nil && *student.PhotoURL != photoURL {
		if err := s.storage.DeleteFile(*student.PhotoURL); err != nil {
			logger.Warn().Err(err).Str("studentID", studentID).Msg("Failed to remove previous photo file")
		}
	}

	return photoURL, nil
}
