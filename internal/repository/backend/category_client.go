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

// CategoryClient реализует клиент ресурса /categories поверх фасада.
type CategoryClient struct {
	c *Client
}

func NewCategoryClient(c *Client) *CategoryClient {
	return &CategoryClient{c: c}
}

func (c *CategoryClient) List(ctx context.Context) ([]domain.Category, error) {
	raw, err := c.c.Request(ctx, http.MethodGet, "/categories", nil)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.CategoryListData
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}

	return converter.CategoriesToEntity(res.Data), nil
}

func (c *CategoryClient) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	raw, err := c.c.Request(ctx, http.MethodGet, "/categories/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.CategoryData
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}

	return converter.CategoryToEntity(&res.Data), nil
}

func (c *CategoryClient) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	raw, err := c.c.Request(ctx, http.MethodPost, "/categories", converter.CategoryToModel(category))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.CategoryData
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}

	return converter.CategoryToEntity(&res.Data), nil
}

func (c *CategoryClient) Update(ctx context.Context, id string, category *domain.Category) (*domain.Category, error) {
	raw, err := c.c.Request(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), converter.CategoryToModel(category))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.CategoryData
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}

	return converter.CategoryToEntity(&res.Data), nil
}

func (c *CategoryClient) Delete(ctx context.Context, id string) error {
	if _, err := c.c.Request(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}
