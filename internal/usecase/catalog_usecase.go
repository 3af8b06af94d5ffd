package usecase

import (
	"context"
	"errors"
	"strings"

	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase/interfaces"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductCode = errors.New("invalid product code")
	ErrInvalidSearchTerm  = errors.New("invalid search term")
)

// ICatalogUseCase exposes product catalog lookups.

type ICatalogUseCase interface {
	GetByCode(ctx context.Context, code string) (entities.Product, error)
	SearchByName(ctx context.Context, prefix string) ([]entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}

type CatalogUseCase struct {
	repo interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetByCode(ctx context.Context, code string) (entities.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Product{}, ErrInvalidProductCode
	}

	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Product{}, err
	}
	if p.Code == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) SearchByName(ctx context.Context, prefix string) ([]entities.Product, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, ErrInvalidSearchTerm
	}
	return u.repo.SearchByName(ctx, prefix)
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}
