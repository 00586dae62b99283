package service

import (
	"context"

	"github.com/ellieharper/otj/internal/domain"
)

type ksbService struct {
	api KSBAPI
}

func NewKSBService(api KSBAPI) KSBService {
	return &ksbService{api: api}
}

// Catalog prefers the store's reference list so the KSB set can evolve
// without a client release. When the endpoint is missing or unreachable
// the built-in catalog keeps the picker usable.
func (s *ksbService) Catalog(ctx context.Context) ([]domain.KSBTag, error) {
	if s.api != nil {
		if tags, err := s.api.ListKSBs(ctx); err == nil && len(tags) > 0 {
			return tags, nil
		}
	}
	return domain.DefaultKSBCatalog(), nil
}
