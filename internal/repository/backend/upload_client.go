package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/beautix-tech/admin-panel/internal/domain"
	"github.com/beautix-tech/admin-panel/internal/repository/backend/converter"
	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/e"
	"github.com/jimlawless/whereami"
)

// UploadClient реализует клиент эндпоинтов /upload/* бэкенда.
// Строится на отдельном фасаде: origin загрузки конфигурируется отдельно.
type UploadClient struct {
	c *Client
}

func NewUploadClient(c *Client) *UploadClient {
	return &UploadClient{c: c}
}

// UploadSingle загружает один файл под полем image и возвращает дескриптор.
func (u *UploadClient) UploadSingle(ctx context.Context, file usecase.UploadFile) (domain.ImageRef, error) {
	raw, err := u.c.Multipart(ctx, "/upload/single", "image", []usecase.UploadFile{file})
	if err != nil {
		return domain.ImageRef{}, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.UploadSingleData
	if err := json.Unmarshal(raw, &res); err != nil {
		return domain.ImageRef{}, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}
	if !res.Success {
		return domain.ImageRef{}, e.NewRequestError(http.StatusBadRequest, res.Message)
	}

	return domain.ImageRef{StorageID: res.Data.StorageID, URL: res.Data.URL}, nil
}

// UploadMultiple загружает несколько файлов под повторяющимся полем images.
// Дескрипторы возвращаются в порядке ответа бэкенда; гарантий соответствия
// порядку выбора файлов контракт не дает.
func (u *UploadClient) UploadMultiple(ctx context.Context, files []usecase.UploadFile) ([]domain.ImageRef, error) {
	raw, err := u.c.Multipart(ctx, "/upload/multiple", "images", files)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var res converter.UploadMultipleData
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMalformedResponse)
	}
	if !res.Success {
		return nil, e.NewRequestError(http.StatusBadRequest, res.Message)
	}

	return converter.ImagesToEntity(res.Data), nil
}
