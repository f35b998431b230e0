package domain

import "github.com/shopspring/decimal"

// LowStockThreshold — порог, ниже которого остаток считается низким.
const LowStockThreshold = 10

// Product описывает продукт каталога. Запись принадлежит бэкенду,
// клиент держит только транзитную копию.
type Product struct {
	ID          string
	Name        string `validate:"required"`
	Description string `validate:"required"`
	// CategoryID — всегда голый идентификатор категории; вложенное
	// представление с бэкенда разворачивается в Category при декодировании.
	CategoryID          string `validate:"required"`
	Category            *Category
	PriceBeforeDiscount decimal.Decimal
	PriceAfterDiscount  *decimal.Decimal // nil — скидки нет
	ShippingFee         decimal.Decimal
	Stock               int
	Status              ProductStatus
	Featured            bool
	Images              []ImageRef `validate:"min=1"`
}

// NewProduct возвращает продукт с значениями по умолчанию для формы создания.
func NewProduct() *Product {
	return &Product{
		Status: StatusVisible,
	}
}

// HasDiscount сообщает, задана ли цена со скидкой.
func (p *Product) HasDiscount() bool {
	return p.PriceAfterDiscount != nil
}

// EffectivePrice возвращает отображаемую цену: со скидкой, если она есть.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.PriceAfterDiscount != nil {
		return *p.PriceAfterDiscount
	}
	return p.PriceBeforeDiscount
}

// LowStock сообщает, опустился ли остаток ниже порога.
func (p *Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}

// CategoryTitle возвращает название категории из вложенного представления,
// если бэкенд его прислал.
func (p *Product) CategoryTitle() string {
	if p.Category != nil {
		return p.Category.Title
	}
	return ""
}
