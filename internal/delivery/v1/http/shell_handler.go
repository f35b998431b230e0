package http

import "net/http"

// ShellHandler — корневой переключатель представлений. Единственное
// сквозное состояние навигации — параметр view текущего запроса.
type ShellHandler struct {
	products   *ProductHandler
	categories *CategoryHandler
}

func NewShellHandler(products *ProductHandler, categories *CategoryHandler) *ShellHandler {
	return &ShellHandler{products: products, categories: categories}
}

// Serve монтирует представление по параметру view.
// Нераспознанные значения откатываются к products.
func (s *ShellHandler) Serve(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("view") {
	case "categories":
		s.categories.Page(w, r)
	default:
		s.products.Page(w, r)
	}
}
