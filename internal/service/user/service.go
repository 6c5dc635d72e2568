package user

import (
	"context"

	"shoemarket/internal/domain"
	userrepo "shoemarket/internal/repository/user"
)

type Service struct {
	repo userrepo.Repository
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo}
}

// UpdateInput patches the profile fields a user may edit. Nil keeps the
// current value; email, role and password stay untouched.
type UpdateInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, user *domain.User, in UpdateInput) (*domain.User, error) {
	return s.repo.UpdateProfile(ctx, user.ID, userrepo.ProfileUpdate{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
	})
}
