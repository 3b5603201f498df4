package poi

import (
	"context"
	"strings"
)

type Service interface {
	Discover(ctx context.Context, query string) ([]POI, error)
}

type service struct {
	discoverer Discoverer
}

func NewService(discoverer Discoverer) Service {
	return &service{discoverer: discoverer}
}

func (s *service) Discover(ctx context.Context, query string) ([]POI, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrQueryRequired
	}
	return s.discoverer.Discover(ctx, query)
}
