package domain

// ProductStatus описывает видимость продукта в витрине.
type ProductStatus string

const (
	StatusVisible ProductStatus = "visible"
	StatusHidden  ProductStatus = "hidden"
)

// ParseProductStatus нормализует строковый статус с бэкенда.
// Неизвестные значения трактуются как hidden.
func ParseProductStatus(s string) ProductStatus {
	if s == string(StatusVisible) {
		return StatusVisible
	}
	return StatusHidden
}
