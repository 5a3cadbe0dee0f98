package repositories

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// execer is the write surface shared by *pgxpool.Pool and pgx.Tx, letting a
// repository method run either standalone or inside a caller's transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ListParams captures the common list-query parameters shared by the
// college, program and student repositories.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	Order   string
}

// orderClause builds a safe ORDER BY expression. The sort column is checked
// against the entity's allow-list and falls back to the primary key, so user
// input never reaches the SQL text directly.
func orderClause(sortBy string, allowed map[string]bool, fallback, order string) string {
	if !allowed[sortBy] {
		sortBy = fallback
	}

	dir := "ASC"
	if strings.EqualFold(order, "desc") {
		dir = "DESC"
	}

	return sortBy + " " + dir
}

// likePattern wraps a search term for substring containment matching.
func likePattern(term string) string {
	return "%" + term + "%"
}

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository   *CollegeRepository
	ProgramRepository   *ProgramRepository
	StudentRepository   *StudentRepository
	UserRepository      *UserRepository
	BlocklistRepository *BlocklistRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CollegeRepository:   NewCollegeRepository(db),
		ProgramRepository:   NewProgramRepository(db),
		StudentRepository:   NewStudentRepository(db),
		UserRepository:      NewUserRepository(db),
		BlocklistRepository: NewBlocklistRepository(db),
	}
}
