package http

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/beautix-tech/admin-panel/internal/domain"
	"github.com/beautix-tech/admin-panel/pkg/e"
	"github.com/beautix-tech/admin-panel/pkg/logger"
	"github.com/jimlawless/whereami"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// pageNames — все страницы панели; каждая комбинируется с общим каркасом.
var pageNames = []string{
	"dashboard",
	"products",
	"categories",
	"product_form",
	"category_form",
	"confirm_delete",
}

// Renderer отвечает за серверный рендеринг страниц панели
// из встроенных шаблонов.
type Renderer struct {
	pages  map[string]*template.Template
	logger logger.Logger
}

func NewRenderer(logger logger.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))

	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}

	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages, logger: logger}, nil
}

// Render выполняет шаблон страницы в буфер и отдает его целиком,
// чтобы ошибка рендеринга не оставила клиенту полстраницы.
func (r *Renderer) Render(w http.ResponseWriter, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.logger.Warnf("unknown page template: %s", page)
		http.Error(w, e.ErrInternalServerError.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logger.Errorf(err, "template render failed: %s", page)
		http.Error(w, e.ErrInternalServerError.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// StaticHandler отдает встроенные статические файлы панели.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// статика зашита в бинарь; отсутствие поддиректории — ошибка сборки
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// shellData — общее состояние каркаса: какой пункт навигации активен.
type shellData struct {
	ActiveView string
}

type productListData struct {
	shellData
	Products []domain.Product
	Alert    string
}

type productFormData struct {
	shellData
	Form       ProductForm
	Categories []domain.Category
	Error      string
}

type categoryListData struct {
	shellData
	Categories []domain.Category
	Alert      string
}

type categoryFormData struct {
	shellData
	Form  CategoryForm
	Error string
}

type dashboardData struct {
	shellData
	Stats domain.Summary
}

type confirmDeleteData struct {
	shellData
	Question  string
	Action    string
	CancelURL string
}
