package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/app/repositories"
)

type MockCollegeRepo struct {
	mock.Mock
}

func (m *MockCollegeRepo) List(ctx context.Context, params repositories.ListParams) ([]models.College, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.College), args.Get(1).(int64), args.Error(2)
}

func (m *MockCollegeRepo) ListCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCollegeRepo) GetByCode(ctx context.Context, code string) (*models.College, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.College), args.Error(1)
}

func (m *MockCollegeRepo) Create(ctx context.Context, college *models.College) error {
	return m.Called(ctx, college).Error(0)
}

func (m *MockCollegeRepo) Update(ctx context.Context, code string, college *models.College) error {
	return m.Called(ctx, code, college).Error(0)
}

func (m *MockCollegeRepo) Delete(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) List(ctx context.Context, params repositories.StudentListParams) ([]models.Student, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Student), args.Get(1).(int64), args.Error(2)
}

func (m *MockStudentRepo) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	return m.Called(ctx, student).Error(0)
}

func (m *MockStudentRepo) Update(ctx context.Context, studentID string, student *models.Student) error {
	return m.Called(ctx, studentID, student).Error(0)
}

func (m *MockStudentRepo) UpdatePhotoURL(ctx context.Context, studentID, photoURL string) error {
	return m.Called(ctx, studentID, photoURL).Error(0)
}

func (m *MockStudentRepo) Delete(ctx context.Context, studentID string) error {
	return m.Called(ctx, studentID).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockBlocklistRepo struct {
	mock.Mock
}

func (m *MockBlocklistRepo) Add(ctx context.Context, jti string) error {
	return m.Called(ctx, jti).Error(0)
}

func (m *MockBlocklistRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlocklistRepo) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	args := m.Called(ctx, retention)
	return args.Get(0).(int64), args.Error(1)
}
