package usecase

import (
	"context"

	"github.com/beautix-tech/admin-panel/internal/domain"
	"github.com/beautix-tech/admin-panel/pkg/e"
	"github.com/beautix-tech/admin-panel/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// CatalogUseCase реализует операции панели поверх клиентов удаленного бэкенда.
// Никакой собственной бизнес-валидации, кроме проверки обязательных полей,
// здесь нет: источник истины — бэкенд.
type CatalogUseCase struct {
	products   ProductsClient
	categories CategoriesClient
	uploads    UploadsClient
	validate   *validator.Validate
	logger     logger.Logger
}

func NewCatalogUC(
	products ProductsClient,
	categories CategoriesClient,
	uploads UploadsClient,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		products:   products,
		categories: categories,
		uploads:    uploads,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.products.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return products, nil
}

func (c *CatalogUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.products.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return product, nil
}

func (c *CatalogUseCase) CreateProduct(ctx context.Context, product *domain.Product) error {
	const op = "CatalogUseCase.CreateProduct"

	normalizeProduct(product)
	if err := c.validate.Struct(product); err != nil {
		return e.Wrap(op, e.Wrap(err.Error(), e.ErrMissingFields))
	}

	if _, err := c.products.Create(ctx, product); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *CatalogUseCase) UpdateProduct(ctx context.Context, id string, product *domain.Product) error {
	const op = "CatalogUseCase.UpdateProduct"

	normalizeProduct(product)
	if err := c.validate.Struct(product); err != nil {
		return e.Wrap(op, e.Wrap(err.Error(), e.ErrMissingFields))
	}

	if _, err := c.products.Update(ctx, id, product); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	const op = "CatalogUseCase.DeleteProduct"

	if err := c.products.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categories.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return categories, nil
}

func (c *CatalogUseCase) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	const op = "CatalogUseCase.GetCategory"

	category, err := c.categories.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return category, nil
}

func (c *CatalogUseCase) CreateCategory(ctx context.Context, category *domain.Category) error {
	const op = "CatalogUseCase.CreateCategory"

	if err := c.validate.Struct(category); err != nil {
		return e.Wrap(op, e.Wrap(err.Error(), e.ErrMissingFields))
	}

	if _, err := c.categories.Create(ctx, category); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *CatalogUseCase) UpdateCategory(ctx context.Context, id string, category *domain.Category) error {
	const op = "CatalogUseCase.UpdateCategory"

	if err := c.validate.Struct(category); err != nil {
		return e.Wrap(op, e.Wrap(err.Error(), e.ErrMissingFields))
	}

	if _, err := c.categories.Update(ctx, id, category); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	const op = "CatalogUseCase.DeleteCategory"

	if err := c.categories.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

// Summary загружает обе коллекции параллельно и считает счетчики.
// Между загрузками нет зависимости по порядку.
func (c *CatalogUseCase) Summary(ctx context.Context) (domain.Summary, error) {
	const op = "CatalogUseCase.Summary"

	type productsRes struct {
		items []domain.Product
		err   error
	}
	type categoriesRes struct {
		items []domain.Category
		err   error
	}

	prCh := make(chan productsRes, 1)
	catCh := make(chan categoriesRes, 1)

	go func() {
		items, err := c.products.List(ctx)
		prCh <- productsRes{items: items, err: err}
	}()
	go func() {
		items, err := c.categories.List(ctx)
		catCh <- categoriesRes{items: items, err: err}
	}()

	pr := <-prCh
	cat := <-catCh

	if pr.err != nil {
		return domain.Summary{}, e.Wrap(op, pr.err)
	}
	if cat.err != nil {
		return domain.Summary{}, e.Wrap(op, cat.err)
	}

	return domain.BuildSummary(pr.items, cat.items), nil
}

func (c *CatalogUseCase) UploadImage(ctx context.Context, file UploadFile) (domain.ImageRef, error) {
	const op = "CatalogUseCase.UploadImage"

	ref, err := c.uploads.UploadSingle(ctx, file)
	if err != nil {
		return domain.ImageRef{}, e.Wrap(op, err)
	}
	return ref, nil
}

func (c *CatalogUseCase) UploadImages(ctx context.Context, files []UploadFile) ([]domain.ImageRef, error) {
	const op = "CatalogUseCase.UploadImages"

	refs, err := c.uploads.UploadMultiple(ctx, files)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return refs, nil
}

// normalizeProduct сводит обе формы поля category к голому идентификатору
// перед отправкой.
func normalizeProduct(p *domain.Product) {
	if p.CategoryID == "" && p.Category != nil {
		p.CategoryID = p.Category.ID
	}
}
