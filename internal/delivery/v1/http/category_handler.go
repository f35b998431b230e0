package http

import (
	"net/http"
	"net/url"

	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// CategoryHandler рендерит список категорий и форму редактирования.
type CategoryHandler struct {
	catalogUC usecase.CatalogUC
	renderer  *Renderer
	logger    logger.Logger
}

func NewCategoryHandler(catalogUC usecase.CatalogUC, renderer *Renderer, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalogUC: catalogUC, renderer: renderer, logger: logger}
}

// Page обрабатывает представление категорий: список либо форма.
func (h *CategoryHandler) Page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	switch {
	case q.Get("form") == "new":
		h.renderForm(w, CategoryForm{}, "")
	case q.Get("edit") != "":
		category, err := h.catalogUC.GetCategory(r.Context(), q.Get("edit"))
		if err != nil {
			h.logger.Errorf(err, "failed to fetch category for edit")
			h.renderList(w, r, displayMessage(err))
			return
		}
		h.renderForm(w, categoryFormFromEntity(category), "")
	default:
		h.renderList(w, r, "")
	}
}

func (h *CategoryHandler) renderList(w http.ResponseWriter, r *http.Request, alert string) {
	categories, err := h.catalogUC.ListCategories(r.Context())
	if err != nil {
		h.logger.Errorf(err, "failed to fetch categories")
		categories = nil
	}

	h.renderer.Render(w, "categories", categoryListData{
		shellData:  shellData{ActiveView: "categories"},
		Categories: categories,
		Alert:      alert,
	})
}

func (h *CategoryHandler) renderForm(w http.ResponseWriter, form CategoryForm, errMsg string) {
	h.renderer.Render(w, "category_form", categoryFormData{
		shellData: shellData{ActiveView: "categories"},
		Form:      form,
		Error:     errMsg,
	})
}

// SubmitForm сохраняет категорию. Загруженное изображение заменяет
// единственный дескриптор буфера еще на странице, сюда приходит итог.
func (h *CategoryHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := categoryFormFromRequest(r)

	if r.PostFormValue("action") != "save" {
		h.renderForm(w, form, "")
		return
	}

	category := form.ToEntity()

	var err error
	if form.ID == "" {
		err = h.catalogUC.CreateCategory(r.Context(), category)
	} else {
		err = h.catalogUC.UpdateCategory(r.Context(), form.ID, category)
	}
	if err != nil {
		h.renderForm(w, form, displayMessage(err))
		return
	}

	http.Redirect(w, r, "/?view=categories", http.StatusSeeOther)
}

// ConfirmDelete показывает страницу подтверждения удаления категории.
func (h *CategoryHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.renderer.Render(w, "confirm_delete", confirmDeleteData{
		shellData: shellData{ActiveView: "categories"},
		Question:  "Êtes-vous sûr de vouloir supprimer cette catégorie?",
		Action:    "/categories/" + url.PathEscape(id) + "/delete",
		CancelURL: "/?view=categories",
	})
}

// Delete выполняет подтвержденное удаление категории.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogUC.DeleteCategory(r.Context(), id); err != nil {
		h.logger.Errorf(err, "failed to delete category %s", id)
		h.renderList(w, r, "Erreur lors de la suppression")
		return
	}

	http.Redirect(w, r, "/?view=categories", http.StatusSeeOther)
}
