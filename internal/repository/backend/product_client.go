package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/beautix-tech/admin-panel/internal/domain"
	"github.com/beautix-tech/admin-panel/internal/repository/backend/converter"
	"github.com/beautix-tech/admin-panel/pkg/e"
	"github.com/jimlawless/whereami"
)

// ProductClient реализует клиент ресурса /products поверх фасада.
// Проверок данных здесь нет: бэкенд — источник истины.
type ProductClient struct {
	c *Client
}

func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

func (p *ProductClient) List(ctx context.Context) ([]domain.Product, error) {
	return p.list(ctx, "/products")
}

// ListVisible возвращает только видимые продукты витрины.
func (p *ProductClient) ListVisible(ctx context.Context) ([]domain.Product, error) {
	return p.list(ctx, "/products/visible")
}

func (p *ProductClient) list(ctx context.Context, path string) ([]domain.Product, error) {
	raw, err := p.c.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.ProductListData
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}

	return converter.ProductsToEntity(res.Data), nil
}

func (p *ProductClient) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	raw, err := p.c.Request(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.ProductData
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}

	return converter.ProductToEntity(&res.Data), nil
}

func (p *ProductClient) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	raw, err := p.c.Request(ctx, http.MethodPost, "/products", converter.ProductToModel(product))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.ProductData
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}

	return converter.ProductToEntity(&res.Data), nil
}

func (p *ProductClient) Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error) {
	raw, err := p.c.Request(ctx, http.MethodPut, "/products/"+url.PathEscape(id), converter.ProductToModel(product))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.ProductData
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}

	return converter.ProductToEntity(&res.Data), nil
}

func (p *ProductClient) Delete(ctx context.Context, id string) error {
	if _, err := p.c.Request(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}
