package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/app/repositories"
	"github.com/campusops/ssis/internal/db"
	"github.com/campusops/ssis/internal/pkg/apperrors"
	"github.com/campusops/ssis/internal/pkg/logger"
)

// CreateDefaultData inserts a starter college and its programs so a fresh
// install has something to browse. Existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	collegeRepo := repositories.NewCollegeRepository(dbPool)
	programRepo := repositories.NewProgramRepository(dbPool)

	college := &models.College{Code: "CCS", Name: "College of Computer Studies"}
	if err := collegeRepo.Create(ctx, college); err != nil {
		if errors.Is(err, apperrors.ErrCollegeAlreadyExists) {
			return nil
		}
		return err
	}

	programs := []models.Program{
		{Code: "BSCS", Name: "Bachelor of Science in Computer Science", CollegeCode: "CCS"},
		{Code: "BSIT", Name: "Bachelor of Science in Information Technology", CollegeCode: "CCS"},
	}

	// The starter programs go in together or not at all.
	err := db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		for i := range programs {
			if err := programRepo.CreateTx(ctx, tx, &programs[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Msg("Seeded default college and programs")
	return nil
}
