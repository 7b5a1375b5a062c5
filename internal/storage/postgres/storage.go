package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
	"github.com/polkiloo/userservice/internal/domain/repository"
)

const uniqueViolation = "23505"

// pgxPool is the subset of *pgxpool.Pool used by the storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
	now    func() time.Time
}

type userRepository struct {
	storage *Storage
}

// New connects to PostgreSQL and initializes the schema. maxConns <= 0 keeps
// the pgxpool default.
func New(ctx context.Context, dsn string, maxConns int, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = int32(maxConns)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger, now: time.Now}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Users returns the user repository backed by this storage.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            username TEXT NOT NULL,
            email TEXT NOT NULL,
            birthday DATE,
            created_on TIMESTAMPTZ NOT NULL,
            updated_on TIMESTAMPTZ NOT NULL,
            CONSTRAINT uk_users_username UNIQUE (username),
            CONSTRAINT uk_users_email UNIQUE (email)
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func (s *Storage) timestamp() time.Time {
	return s.now().UTC()
}

// --- UserRepository implementation ---

const userColumns = `id, username, email, birthday, created_on, updated_on`

func (r *userRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	saved := *user
	now := r.storage.timestamp()

	var err error
	if saved.IsNew() {
		const query = `INSERT INTO users (username, email, birthday, created_on, updated_on)
                       VALUES ($1, $2, $3, $4, $4) RETURNING id`
		err = r.storage.pool.QueryRow(ctx, query, saved.Username, saved.Email, toPgDate(saved.Birthday), now).Scan(&saved.ID)
		saved.CreatedOn = now
	} else {
		const query = `UPDATE users SET username=$1, email=$2, birthday=$3, updated_on=$4
                       WHERE id=$5 RETURNING created_on`
		err = r.storage.pool.QueryRow(ctx, query, saved.Username, saved.Email, toPgDate(saved.Birthday), now, saved.ID).Scan(&saved.CreatedOn)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.storage.logger.Debug("user unique constraint violated", slog.String("constraint", pgErr.ConstraintName))
			return nil, domainErrors.ErrDuplicateKey
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	saved.UpdatedOn = now
	return &saved, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.findOne(ctx, query, id)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return r.findOne(ctx, query, username)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.findOne(ctx, query, email)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	u, err := scanUser(r.storage.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Delete(ctx context.Context, user *model.User) error {
	const query = `DELETE FROM users WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u        model.User
		birthday pgtype.Date
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &birthday, &u.CreatedOn, &u.UpdatedOn); err != nil {
		return nil, err
	}
	u.Birthday = fromPgDate(birthday)
	return &u, nil
}

func toPgDate(d *model.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func fromPgDate(d pgtype.Date) *model.Date {
	if !d.Valid {
		return nil
	}
	date := model.DateOf(d.Time)
	return &date
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
