package domain

// Summary — агрегированные счетчики для сводной панели.
type Summary struct {
	TotalProducts    int
	VisibleProducts  int
	TotalCategories  int
	LowStockProducts int
}

// BuildSummary вычисляет счетчики по свежезагруженным коллекциям.
func BuildSummary(products []Product, categories []Category) Summary {
	s := Summary{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
	}

	for i := range products {
		if products[i].Status == StatusVisible {
			s.VisibleProducts++
		}
		if products[i].LowStock() {
			s.LowStockProducts++
		}
	}

	return s
}
