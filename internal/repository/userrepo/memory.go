package userrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
)

// MemoryRepository é a implementação em memória do domain.UserRepository,
// usada com STORAGE_DRIVER=memory. As contas vivem só durante o processo.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

// NewMemoryRepository cria o repositório de usuários em memória.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

// Save insere o usuário; email duplicado vira ConflictError, como no PostgreSQL.
func (r *MemoryRepository) Save(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return domain.User{}, apperror.NewConflictError(fmt.Sprintf("O email '%s' já está cadastrado.", user.Email))
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return user, nil
}

// FindByEmail busca o usuário pelo email.
func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, apperror.NewNotFoundError("Usuário não encontrado.")
	}
	return r.byID[id], nil
}

// FindByID busca o usuário pelo ID.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return domain.User{}, apperror.NewNotFoundError("Usuário não encontrado.")
	}
	return user, nil
}
