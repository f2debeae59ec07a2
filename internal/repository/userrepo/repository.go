package userrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
)

// UserRepository implementa domain.UserRepository sobre PostgreSQL.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
}

// NewUserRepository cria e retorna uma nova instância do Repositório de usuários.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration) *UserRepository {
	return &UserRepository{DB: db, DBTimeout: dbTimeout}
}

// uniqueViolation é o código do PostgreSQL para violação de chave única.
const uniqueViolation = "23505"

// Save insere o usuário. Email duplicado (constraint UNIQUE) vira ConflictError.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(ctxGo, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return domain.User{}, apperror.NewConflictError(fmt.Sprintf("O email '%s' já está cadastrado.", user.Email))
		}
		return domain.User{}, apperror.NewDBError("Falha ao salvar usuário", err)
	}

	return user, nil
}

// FindByEmail busca o usuário pelo email (chave de login).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

// FindByID busca o usuário pelo ID (claims do token).
func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg interface{}) (domain.User, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		SELECT id, email, password_hash, first_name, last_name, role, created_at, updated_at
		FROM users
		WHERE ` + where

	var user domain.User
	err := r.DB.QueryRowContext(ctxGo, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.User{}, apperror.NewNotFoundError("Usuário não encontrado.")
	}
	if err != nil {
		return domain.User{}, apperror.NewDBError("Falha ao buscar usuário no DB", err)
	}
	return user, nil
}
