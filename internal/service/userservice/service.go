// Package userservice contém a lógica de negócio de contas: registro com
// hash bcrypt, login com emissão de JWT e consulta de perfil.
package userservice

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
	"goshop/internal/pkg/logger"
	"goshop/internal/pkg/token"
	"goshop/internal/pkg/validation"
)

// UserService orquestra o repositório de usuários e o serviço de token.
type UserService struct {
	Repo     domain.UserRepository
	TokenSvc token.TokenService
	Logger   logger.Logger
}

// NewUserService cria e retorna uma nova instância do Serviço de usuários.
func NewUserService(repo domain.UserRepository, tokenSvc token.TokenService, log logger.Logger) *UserService {
	return &UserService{Repo: repo, TokenSvc: tokenSvc, Logger: log}
}

// Register valida o payload, gera o hash da senha e persiste o novo usuário
// com a role padrão "user". Email duplicado propaga como ConflictError (409).
func (s *UserService) Register(ctx context.Context, reg domain.UserRegistration) (domain.User, error) {
	if err := validation.Struct(reg); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar o hash da senha.", err)
	}

	user := domain.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(reg.Email)),
		PasswordHash: string(hash),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Role:         domain.RoleUser,
	}

	saved, err := s.Repo.Save(ctx, user)
	if err != nil {
		return domain.User{}, err
	}

	s.Logger.Info("Usuário registrado com sucesso.", map[string]interface{}{"user_id": saved.ID})
	return saved, nil
}

// Login autentica por email/senha e emite um JWT. Usuário inexistente e senha
// incorreta produzem o mesmo UnauthorizedError, sem revelar qual dos dois.
func (s *UserService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", domain.User{}, apperror.NewValidationError("Email e senha são obrigatórios.")
	}

	user, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := err.(*apperror.NotFoundError); ok {
			return "", domain.User{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
		}
		return "", domain.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.User{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	tokenString, err := s.TokenSvc.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", domain.User{}, apperror.NewInternalError("Falha ao gerar o token de acesso.", err)
	}

	return tokenString, user, nil
}

// Profile devolve o usuário identificado pelas claims do token.
func (s *UserService) Profile(ctx context.Context, userID string) (domain.User, error) {
	return s.Repo.FindByID(ctx, userID)
}
