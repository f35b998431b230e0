package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/beautix-tech/admin-panel/internal/domain"
	"github.com/beautix-tech/admin-panel/pkg/e"
)

// ProductForm — транзитный буфер редактирования продукта. Значения хранятся
// сырыми строками и переносятся внутри самой HTML-формы, поэтому при ошибке
// отправки ввод пользователя не теряется.
type ProductForm struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	PriceBefore string
	PriceAfter  string
	ShippingFee string
	Stock       string
	Status      string
	Featured    bool
	Images      []domain.ImageRef
}

// newProductForm возвращает буфер с значениями по умолчанию для создания.
func newProductForm() ProductForm {
	return ProductForm{
		ShippingFee: "0",
		Stock:       "0",
		Status:      string(domain.StatusVisible),
	}
}

// productFormFromEntity заполняет буфер из существующего продукта.
func productFormFromEntity(p *domain.Product) ProductForm {
	form := ProductForm{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		PriceBefore: p.PriceBeforeDiscount.String(),
		ShippingFee: p.ShippingFee.String(),
		Stock:       strconv.Itoa(p.Stock),
		Status:      string(p.Status),
		Featured:    p.Featured,
		Images:      p.Images,
	}
	if p.PriceAfterDiscount != nil {
		form.PriceAfter = p.PriceAfterDiscount.String()
	}
	return form
}

// productFormFromRequest восстанавливает буфер из отправленной формы.
// Порядок изображений — порядок скрытых полей на странице.
func productFormFromRequest(r *http.Request) ProductForm {
	return ProductForm{
		ID:          r.PostFormValue("id"),
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		CategoryID:  r.PostFormValue("category"),
		PriceBefore: r.PostFormValue("prixAvantRemise"),
		PriceAfter:  r.PostFormValue("prixApresRemise"),
		ShippingFee: r.PostFormValue("fraisLivraison"),
		Stock:       r.PostFormValue("stock"),
		Status:      r.PostFormValue("status"),
		Featured:    r.PostFormValue("featured") != "",
		Images:      imagesFromForm(r),
	}
}

func imagesFromForm(r *http.Request) []domain.ImageRef {
	ids := r.PostForm["imageStorageId"]
	urls := r.PostForm["imageUrl"]

	images := make([]domain.ImageRef, 0, len(ids))
	for i := range ids {
		if i >= len(urls) {
			break
		}
		images = append(images, domain.ImageRef{StorageID: ids[i], URL: urls[i]})
	}
	return images
}

// ToEntity нормализует буфер в domain-продукт. Пустая цена со скидкой
// становится явным отсутствием значения, никогда пустой строкой.
func (f ProductForm) ToEntity() (*domain.Product, error) {
	priceBefore, err := parsePrice(f.PriceBefore)
	if err != nil {
		return nil, err
	}

	priceAfter, err := parseOptionalPrice(f.PriceAfter)
	if err != nil {
		return nil, err
	}

	shipping, err := parseOptionalPrice(f.ShippingFee)
	if err != nil {
		return nil, err
	}

	stock := 0
	if strings.TrimSpace(f.Stock) != "" {
		stock, err = strconv.Atoi(strings.TrimSpace(f.Stock))
		if err != nil || stock < 0 {
			return nil, e.ErrInvalidStock
		}
	}

	product := &domain.Product{
		ID:                  f.ID,
		Name:                strings.TrimSpace(f.Name),
		Description:         strings.TrimSpace(f.Description),
		CategoryID:          f.CategoryID,
		PriceBeforeDiscount: priceBefore,
		PriceAfterDiscount:  priceAfter,
		Stock:               stock,
		Status:              domain.ParseProductStatus(f.Status),
		Featured:            f.Featured,
		Images:              f.Images,
	}
	if shipping != nil {
		product.ShippingFee = *shipping
	}

	return product, nil
}

// CategoryForm — транзитный буфер редактирования категории:
// заголовок и единственный дескриптор изображения.
type CategoryForm struct {
	ID             string
	Title          string
	ImageStorageID string
	ImageURL       string
}

func categoryFormFromEntity(c *domain.Category) CategoryForm {
	return CategoryForm{
		ID:             c.ID,
		Title:          c.Title,
		ImageStorageID: c.Image.StorageID,
		ImageURL:       c.Image.URL,
	}
}

func categoryFormFromRequest(r *http.Request) CategoryForm {
	return CategoryForm{
		ID:             r.PostFormValue("id"),
		Title:          r.PostFormValue("title"),
		ImageStorageID: r.PostFormValue("imageStorageId"),
		ImageURL:       r.PostFormValue("imageUrl"),
	}
}

func (f CategoryForm) ToEntity() *domain.Category {
	return &domain.Category{
		ID:    f.ID,
		Title: strings.TrimSpace(f.Title),
		Image: domain.ImageRef{StorageID: f.ImageStorageID, URL: f.ImageURL},
	}
}

// parseImageAction разбирает именованные действия над последовательностью
// изображений: left:i, right:i, remove:i, move:from:to. Все три механизма
// перестановки сходятся в одну операцию перемещения.
func parseImageAction(action string) (func([]domain.ImageRef) []domain.ImageRef, bool) {
	parts := strings.Split(action, ":")

	idx := func(s string) (int, bool) {
		i, err := strconv.Atoi(s)
		return i, err == nil
	}

	switch {
	case len(parts) == 2 && parts[0] == "left":
		if i, ok := idx(parts[1]); ok {
			return func(images []domain.ImageRef) []domain.ImageRef {
				return domain.MoveImage(images, i, i-1)
			}, true
		}
	case len(parts) == 2 && parts[0] == "right":
		if i, ok := idx(parts[1]); ok {
			return func(images []domain.ImageRef) []domain.ImageRef {
				return domain.MoveImage(images, i, i+1)
			}, true
		}
	case len(parts) == 2 && parts[0] == "remove":
		if i, ok := idx(parts[1]); ok {
			return func(images []domain.ImageRef) []domain.ImageRef {
				return domain.RemoveImage(images, i)
			}, true
		}
	case len(parts) == 3 && parts[0] == "move":
		from, okFrom := idx(parts[1])
		to, okTo := idx(parts[2])
		if okFrom && okTo {
			return func(images []domain.ImageRef) []domain.ImageRef {
				return domain.MoveImage(images, from, to)
			}, true
		}
	}

	return nil, false
}
