package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpsalviano/todolists/internal/domain/entity"
	"github.com/jpsalviano/todolists/internal/domain/repository"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING user_id, verified, created_at
	`, u.Name, u.Email, u.Password)

	if err := row.Scan(&u.ID, &u.Verified, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, `
		SELECT user_id, name, email, password, verified, created_at
		FROM users
		WHERE email = $1
	`, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*entity.User, error) {
	return r.getBy(ctx, `
		SELECT user_id, name, email, password, verified, created_at
		FROM users
		WHERE user_id = $1
	`, id)
}

func (r *UserRepository) getBy(ctx context.Context, query string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Verified, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) SetVerified(ctx context.Context, email string) error {
	res, err := r.pool.Exec(ctx, `UPDATE users SET verified = true WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateUnverified(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET name = $1, password = $2
		WHERE email = $3 AND verified = false
		RETURNING user_id
	`, u.Name, u.Password, u.Email)
	if err := row.Scan(&u.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
