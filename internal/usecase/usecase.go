package usecase

import (
	"context"

	"github.com/beautix-tech/admin-panel/internal/domain"
)

// CatalogUC — операции панели администратора над удаленным каталогом.
type CatalogUC interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, id string, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, id string, category *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error

	Summary(ctx context.Context) (domain.Summary, error)

	UploadImage(ctx context.Context, file UploadFile) (domain.ImageRef, error)
	UploadImages(ctx context.Context, files []UploadFile) ([]domain.ImageRef, error)
}
