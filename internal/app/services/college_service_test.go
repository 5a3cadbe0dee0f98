package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/app/repositories"
	"github.com/campusops/ssis/internal/pkg/apperrors"
)

func TestCollegeService_ListColleges(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes out-of-range pagination before querying", func(t *testing.T) {
		repo := new(MockCollegeRepo)
		svc := NewCollegeService(repo)

		repo.On("List", ctx, mock.MatchedBy(func(p repositories.ListParams) bool {
			return p.Page == 1 && p.PerPage == 10
		})).Return([]models.College{{Code: "CCS", Name: "College of Computer Studies"}}, int64(1), nil).Once()

		colleges, total, err := svc.ListColleges(ctx, repositories.ListParams{Page: -3, PerPage: 0})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, colleges, 1)
		repo.AssertExpectations(t)
	})

	t.Run("caps per_page at the maximum", func(t *testing.T) {
		repo := new(MockCollegeRepo)
		svc := NewCollegeService(repo)

		repo.On("List", ctx, mock.MatchedBy(func(p repositories.ListParams) bool {
			return p.PerPage == 100
		})).Return([]models.College{}, int64(0), nil).Once()

		_, _, err := svc.ListColleges(ctx, repositories.ListParams{Page: 1, PerPage: 5000})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestCollegeService_CreateCollege(t *testing.T) {
	ctx := context.Background()

	t.Run("valid college is created", func(t *testing.T) {
		repo := new(MockCollegeRepo)
		svc := NewCollegeService(repo)

		college := &models.College{Code: "CCS", Name: "College of Computer Studies"}
		repo.On("Create", ctx, college).Return(nil).Once()

		require.NoError(t, svc.CreateCollege(ctx, college))
		repo.AssertExpectations(t)
	})

	t.Run("blank code fails validation without touching the repo", func(t *testing.T) {
		repo := new(MockCollegeRepo)
		svc := NewCollegeService(repo)

		err := svc.CreateCollege(ctx, &models.College{Code: "  ", Name: "X"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate code surfaces as a conflict", func(t *testing.T) {
		repo := new(MockCollegeRepo)
		svc := NewCollegeService(repo)

		college := &models.College{Code: "CCS", Name: "College of Computer Studies"}
		repo.On("Create", ctx, college).Return(apperrors.ErrCollegeAlreadyExists).Once()

		err := svc.CreateCollege(ctx, college)
		assert.ErrorIs(t, err, apperrors.ErrCollegeAlreadyExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestCollegeService_DeleteCollege(t *testing.T) {
	ctx := context.Background()

	t.Run("college with programs cannot be deleted", func(t *testing.T) {
		repo := new(MockCollegeRepo)
		svc := NewCollegeService(repo)

		repo.On("Delete", ctx, "CCS").Return(apperrors.ErrCollegeHasPrograms).Once()

		err := svc.DeleteCollege(ctx, "CCS")
		assert.ErrorIs(t, err, apperrors.ErrHasRelations)
	})

	t.Run("unknown college is not found", func(t *testing.T) {
		repo := new(MockCollegeRepo)
		svc := NewCollegeService(repo)

		repo.On("Delete", ctx, "NOPE").Return(apperrors.ErrCollegeNotFound).Once()

		err := svc.DeleteCollege(ctx, "NOPE")
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}
