package usecase

import (
	"context"

	"github.com/beautix-tech/admin-panel/internal/domain"
)

// ProductsClient — типизированный клиент ресурса /products удаленного бэкенда.
type ProductsClient interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListVisible(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// CategoriesClient — типизированный клиент ресурса /categories.
type CategoriesClient interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// UploadsClient — клиент эндпоинтов /upload/* бэкенда.
type UploadsClient interface {
	UploadSingle(ctx context.Context, file UploadFile) (domain.ImageRef, error)
	UploadMultiple(ctx context.Context, files []UploadFile) ([]domain.ImageRef, error)
}
