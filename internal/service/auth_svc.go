package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/you/parking-booking/internal/domain"
	"github.com/you/parking-booking/internal/repository"
	"github.com/you/parking-booking/pkg/auth"
)

type AuthSvc struct {
	repo       *repository.UserRepo
	tokens     *auth.Tokens
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthSvc(r *repository.UserRepo, tokens *auth.Tokens, accessTTL, refreshTTL time.Duration) *AuthSvc {
	return &AuthSvc{repo: r, tokens: tokens, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func normalizeRole(role string) domain.Role {
	switch domain.Role(strings.ToUpper(role)) {
	case domain.RoleOwner:
		return domain.RoleOwner
	case domain.RoleAdmin:
		return domain.RoleAdmin
	default:
		return domain.RoleUser
	}
}

func (s *AuthSvc) Register(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Name:         name,
		Role:         normalizeRole(role),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	u, err := s.repo.ByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", "", domain.ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", "", domain.ErrBadCredentials
	}
	access, err := s.tokens.Create(u.ID, string(u.Role), u.Email, s.accessTTL)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.Create(u.ID, string(u.Role), u.Email, s.refreshTTL)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}
