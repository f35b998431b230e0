package http

import (
	"net/http"
	"net/url"

	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// ProductHandler рендерит список продуктов, форму редактирования
// и выполняет действия над ними.
type ProductHandler struct {
	catalogUC usecase.CatalogUC
	renderer  *Renderer
	logger    logger.Logger
}

func NewProductHandler(catalogUC usecase.CatalogUC, renderer *Renderer, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, renderer: renderer, logger: logger}
}

// Page обрабатывает представление продуктов: список либо форма
// (form=new — создание, edit=id — редактирование).
func (h *ProductHandler) Page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	switch {
	case q.Get("form") == "new":
		h.renderForm(w, r, newProductForm(), "")
	case q.Get("edit") != "":
		product, err := h.catalogUC.GetProduct(r.Context(), q.Get("edit"))
		if err != nil {
			h.logger.Errorf(err, "failed to fetch product for edit")
			h.renderList(w, r, displayMessage(err))
			return
		}
		h.renderForm(w, r, productFormFromEntity(product), "")
	default:
		h.renderList(w, r, "")
	}
}

// renderList загружает коллекцию заново при каждом рендере. Ошибка загрузки
// логируется, страница отдается с пустым списком — представление никогда
// не зависает в состоянии загрузки.
func (h *ProductHandler) renderList(w http.ResponseWriter, r *http.Request, alert string) {
	products, err := h.catalogUC.ListProducts(r.Context())
	if err != nil {
		h.logger.Errorf(err, "failed to fetch products")
		products = nil
	}

	h.renderer.Render(w, "products", productListData{
		shellData: shellData{ActiveView: "products"},
		Products:  products,
		Alert:     alert,
	})
}

// renderForm рендерит форму с текущим буфером. Список категорий для
// выпадающего списка загружается отдельно; его отказ не блокирует форму.
func (h *ProductHandler) renderForm(w http.ResponseWriter, r *http.Request, form ProductForm, errMsg string) {
	categories, err := h.catalogUC.ListCategories(r.Context())
	if err != nil {
		h.logger.Errorf(err, "failed to fetch categories for product form")
		categories = nil
	}

	h.renderer.Render(w, "product_form", productFormData{
		shellData:  shellData{ActiveView: "products"},
		Form:       form,
		Categories: categories,
		Error:      errMsg,
	})
}

// SubmitForm обрабатывает именованные действия формы. Действия над
// последовательностью изображений меняют буфер и перерисовывают форму без
// единого сетевого вызова; save нормализует буфер и отправляет на бэкенд.
func (h *ProductHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := productFormFromRequest(r)
	action := r.PostFormValue("action")

	if apply, ok := parseImageAction(action); ok {
		form.Images = apply(form.Images)
		h.renderForm(w, r, form, "")
		return
	}

	if action != "save" {
		// refresh после загрузки изображений и любые неизвестные действия
		// просто перерисовывают буфер
		h.renderForm(w, r, form, "")
		return
	}

	product, err := form.ToEntity()
	if err != nil {
		h.renderForm(w, r, form, displayMessage(err))
		return
	}

	if form.ID == "" {
		err = h.catalogUC.CreateProduct(r.Context(), product)
	} else {
		err = h.catalogUC.UpdateProduct(r.Context(), form.ID, product)
	}
	if err != nil {
		// форма остается открытой, буфер цел — пользователь повторяет
		// отправку без повторного ввода
		h.renderForm(w, r, form, displayMessage(err))
		return
	}

	http.Redirect(w, r, "/?view=products", http.StatusSeeOther)
}

// ConfirmDelete показывает страницу подтверждения. Отказ — это ссылка
// назад на список, никакого запроса удаления при этом не происходит.
func (h *ProductHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.renderer.Render(w, "confirm_delete", confirmDeleteData{
		shellData: shellData{ActiveView: "products"},
		Question:  "Êtes-vous sûr de vouloir supprimer ce produit?",
		Action:    "/products/" + url.PathEscape(id) + "/delete",
		CancelURL: "/?view=products",
	})
}

// Delete выполняет подтвержденное удаление. Успех ведет обратно на список
// (свежая загрузка вместо локального удаления); отказ показывает алерт,
// список остается без изменений.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogUC.DeleteProduct(r.Context(), id); err != nil {
		h.logger.Errorf(err, "failed to delete product %s", id)
		h.renderList(w, r, "Erreur lors de la suppression")
		return
	}

	http.Redirect(w, r, "/?view=products", http.StatusSeeOther)
}
