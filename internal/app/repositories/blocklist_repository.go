package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusops/ssis/internal/pkg/dberrors"
	"github.com/campusops/ssis/internal/pkg/logger"
)

// BlocklistRepository handles revoked token database operations
type BlocklistRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBlocklistRepository creates a new BlocklistRepository
func NewBlocklistRepository(db *pgxpool.Pool) *BlocklistRepository {
	return &BlocklistRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Add records a token ID as revoked. Revoking the same token twice is a no-op.
func (r *BlocklistRepository) Add(ctx context.Context, jti string) error {
	sql, args, err := r.sb.Insert("token_blocklist").
		Columns("jti").
		Values(jti).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add blocklist entry query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		logger.Error().Err(err).Str("jti", jti).Msg("Error adding token to blocklist")
		return fmt.Errorf("error adding token to blocklist: %w", err)
	}

	return nil
}

// IsRevoked reports whether a token ID has been revoked
func (r *BlocklistRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("token_blocklist").
		Where(squirrel.Eq{"jti": jti}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build blocklist lookup query: %w", err)
	}

	var revoked bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&revoked); err != nil {
		logger.Error().Err(err).Str("jti", jti).Msg("Error checking token blocklist")
		return false, fmt.Errorf("error checking token blocklist: %w", err)
	}

	return revoked, nil
}

// Cleanup deletes blocklist entries older than the retention window and
// returns the number of rows removed. Entries only need to outlive the
// access token lifetime, after which the token is rejected as expired anyway.
func (r *BlocklistRepository) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)

	sql, args, err := r.sb.Delete("token_blocklist").
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build blocklist cleanup query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error cleaning up token blocklist")
		return 0, fmt.Errorf("error cleaning up token blocklist: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
