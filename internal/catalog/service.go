package catalog

import (
	"context"
)

// Service exposes the package catalog.
type Service interface {
	List(ctx context.Context) ([]*Package, error)
	GetByID(ctx context.Context, id int64) (*Package, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Package, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Package, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}
