package converter

import (
	"github.com/beautix-tech/admin-panel/internal/domain"
)

// ProductToEntity преобразует продукт из контракта бэкенда в domain.
func ProductToEntity(m *ProductModel) *domain.Product {
	p := &domain.Product{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		CategoryID:          m.Category.ID,
		PriceBeforeDiscount: m.PriceBefore,
		PriceAfterDiscount:  m.PriceAfter,
		ShippingFee:         m.ShippingFee,
		Stock:               m.Stock,
		Status:              domain.ParseProductStatus(m.Status),
		Featured:            m.Featured,
		Images:              ImagesToEntity(m.Images),
	}

	if m.Category.Embedded != nil {
		p.Category = CategoryToEntity(m.Category.Embedded)
	}

	return p
}

// ProductToModel преобразует domain-продукт в тело запроса бэкенда.
func ProductToModel(p *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    CategoryField{ID: p.CategoryID},
		PriceBefore: p.PriceBeforeDiscount,
		PriceAfter:  p.PriceAfterDiscount,
		ShippingFee: p.ShippingFee,
		Stock:       p.Stock,
		Status:      string(p.Status),
		Featured:    p.Featured,
		Images:      ImagesToModel(p.Images),
	}
}

func ProductsToEntity(models []ProductModel) []domain.Product {
	products := make([]domain.Product, 0, len(models))
	for i := range models {
		products = append(products, *ProductToEntity(&models[i]))
	}
	return products
}

// CategoryToEntity преобразует категорию из контракта бэкенда в domain.
func CategoryToEntity(m *CategoryModel) *domain.Category {
	return &domain.Category{
		ID:    m.ID,
		Title: m.Title,
		Image: domain.ImageRef{StorageID: m.Image.StorageID, URL: m.Image.URL},
	}
}

// CategoryToModel преобразует domain-категорию в тело запроса бэкенда.
func CategoryToModel(c *domain.Category) *CategoryModel {
	return &CategoryModel{
		ID:    c.ID,
		Title: c.Title,
		Image: ImageModel{StorageID: c.Image.StorageID, URL: c.Image.URL},
	}
}

func CategoriesToEntity(models []CategoryModel) []domain.Category {
	categories := make([]domain.Category, 0, len(models))
	for i := range models {
		categories = append(categories, *CategoryToEntity(&models[i]))
	}
	return categories
}

// ImagesToEntity сохраняет порядок ответа бэкенда: индекс 0 — главное изображение.
func ImagesToEntity(models []ImageModel) []domain.ImageRef {
	images := make([]domain.ImageRef, 0, len(models))
	for _, m := range models {
		images = append(images, domain.ImageRef{StorageID: m.StorageID, URL: m.URL})
	}
	return images
}

func ImagesToModel(images []domain.ImageRef) []ImageModel {
	models := make([]ImageModel, 0, len(images))
	for _, img := range images {
		models = append(models, ImageModel{StorageID: img.StorageID, URL: img.URL})
	}
	return models
}
