package converter

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Денежные поля бэкенда — JSON-числа, не строки.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ImageModel представляет дескриптор изображения в контракте бэкенда.
type ImageModel struct {
	StorageID string `json:"storageId"`
	URL       string `json:"url"`
}

// CategoryModel представляет категорию в контракте бэкенда.
type CategoryModel struct {
	ID    string     `json:"_id,omitempty"`
	Title string     `json:"title"`
	Image ImageModel `json:"image"`
}

// ProductModel представляет продукт в контракте бэкенда
// (имена денежных полей — французские, как их отдает бэкенд).
type ProductModel struct {
	ID          string           `json:"_id,omitempty"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    CategoryField    `json:"category"`
	PriceBefore decimal.Decimal  `json:"prixAvantRemise"`
	PriceAfter  *decimal.Decimal `json:"prixApresRemise"`
	ShippingFee decimal.Decimal  `json:"fraisLivraison"`
	Stock       int              `json:"stock"`
	Status      string           `json:"status"`
	Featured    bool             `json:"featured"`
	Images      []ImageModel     `json:"images"`
}

// CategoryField принимает поле category в обеих формах контракта:
// вложенный объект категории либо голый идентификатор. Сразу после
// декодирования всюду дальше используется только ID.
type CategoryField struct {
	ID       string
	Embedded *CategoryModel
}

func (f *CategoryField) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = CategoryField{}
		return nil
	}

	if data[0] == '"' {
		return json.Unmarshal(data, &f.ID)
	}

	var model CategoryModel
	if err := json.Unmarshal(data, &model); err != nil {
		return err
	}
	f.ID = model.ID
	f.Embedded = &model
	return nil
}

// MarshalJSON всегда отправляет голый идентификатор.
func (f CategoryField) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.ID)
}

// Конверты ответов бэкенда.

type ProductListData struct {
	Data []ProductModel `json:"data"`
}

type ProductData struct {
	Data ProductModel `json:"data"`
}

type CategoryListData struct {
	Data []CategoryModel `json:"data"`
}

type CategoryData struct {
	Data CategoryModel `json:"data"`
}

type UploadSingleData struct {
	Success bool       `json:"success"`
	Data    ImageModel `json:"data"`
	Message string     `json:"message"`
}

type UploadMultipleData struct {
	Success bool         `json:"success"`
	Data    []ImageModel `json:"data"`
	Message string       `json:"message"`
}
