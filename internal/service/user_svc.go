package service

import (
	"context"

	"github.com/you/parking-booking/internal/domain"
	"github.com/you/parking-booking/internal/repository"
)

type UserSvc struct{ repo *repository.UserRepo }

func NewUserSvc(r *repository.UserRepo) *UserSvc { return &UserSvc{repo: r} }

func (s *UserSvc) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ByID(ctx, id)
}

func (s *UserSvc) Update(ctx context.Context, id, name, phone, avatarURL string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrUnauthorized
	}
	fields := map[string]any{}
	if name != "" {
		fields["name"] = name
	}
	if phone != "" {
		fields["phone"] = phone
	}
	if avatarURL != "" {
		fields["avatar_url"] = avatarURL
	}
	if len(fields) == 0 {
		return s.repo.ByID(ctx, id)
	}
	return s.repo.UpdateFields(ctx, id, fields)
}
