package services

import (
	"context"
	"time"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/app/repositories"
)

// Repository interfaces consumed by the service layer. The concrete
// implementations live in the repositories package; tests substitute mocks.

// CollegeRepo provides college persistence operations
type CollegeRepo interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.College, int64, error)
	ListCodes(ctx context.Context) ([]string, error)
	GetByCode(ctx context.Context, code string) (*models.College, error)
	Create(ctx context.Context, college *models.College) error
	Update(ctx context.Context, code string, college *models.College) error
	Delete(ctx context.Context, code string) error
}

// ProgramRepo provides program persistence operations
type ProgramRepo interface {
	List(ctx context.Context, params repositories.ProgramListParams) ([]models.Program, int64, error)
	ListCodes(ctx context.Context) ([]string, error)
	GetByCode(ctx context.Context, code string) (*models.Program, error)
	Create(ctx context.Context, program *models.Program) error
	Update(ctx context.Context, code string, program *models.Program) error
	Delete(ctx context.Context, code string) error
}

// StudentRepo provides student persistence operations
type StudentRepo interface {
	List(ctx context.Context, params repositories.StudentListParams) ([]models.Student, int64, error)
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, studentID string, student *models.Student) error
	UpdatePhotoURL(ctx context.Context, studentID, photoURL string) error
	Delete(ctx context.Context, studentID string) error
}

// UserRepo provides user persistence operations
type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// BlocklistRepo provides revoked token persistence operations
type BlocklistRepo interface {
	Add(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}
