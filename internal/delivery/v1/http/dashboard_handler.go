package http

import (
	"net/http"

	"github.com/beautix-tech/admin-panel/internal/domain"
	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/logger"
)

// DashboardHandler рендерит сводную панель со счетчиками.
type DashboardHandler struct {
	catalogUC usecase.CatalogUC
	renderer  *Renderer
	logger    logger.Logger
}

func NewDashboardHandler(catalogUC usecase.CatalogUC, renderer *Renderer, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{catalogUC: catalogUC, renderer: renderer, logger: logger}
}

// Page загружает обе коллекции (параллельно, внутри usecase) и считает
// счетчики. Отказ логируется, повторов нет — счетчики остаются нулевыми.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalogUC.Summary(r.Context())
	if err != nil {
		h.logger.Errorf(err, "failed to fetch dashboard stats")
		stats = domain.Summary{}
	}

	h.renderer.Render(w, "dashboard", dashboardData{
		shellData: shellData{ActiveView: "dashboard"},
		Stats:     stats,
	})
}
