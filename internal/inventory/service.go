package inventory

import (
	"context"
)

type Service interface {
	Search(ctx context.Context, filter Filter) ([]*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Search(ctx context.Context, filter Filter) ([]*Item, error) {
	return s.repo.Search(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}
