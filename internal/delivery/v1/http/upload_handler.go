package http

import (
	"errors"
	"net/http"

	"github.com/beautix-tech/admin-panel/internal/cfg"
	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/e"
	"github.com/beautix-tech/admin-panel/pkg/logger"
)

// UploadHandler принимает multipart-загрузки со страниц форм и проксирует
// их на эндпоинты /upload/* бэкенда, возвращая его форму ответа.
type UploadHandler struct {
	catalogUC usecase.CatalogUC
	cfg       *cfg.UploadCfg
	logger    logger.Logger
}

func NewUploadHandler(catalogUC usecase.CatalogUC, cfg *cfg.UploadCfg, logger logger.Logger) *UploadHandler {
	return &UploadHandler{catalogUC: catalogUC, cfg: cfg, logger: logger}
}

type imagePayload struct {
	StorageID string `json:"storageId"`
	URL       string `json:"url"`
}

type uploadSingleResponse struct {
	Success bool         `json:"success"`
	Data    imagePayload `json:"data"`
}

type uploadMultipleResponse struct {
	Success bool           `json:"success"`
	Data    []imagePayload `json:"data"`
}

type uploadErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Single
//
//	@Summary		Загрузка одного изображения
//	@Description	Проксирует файл на эндпоинт загрузки бэкенда и возвращает дескриптор
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Файл изображения"
//	@Success		200		{object}	uploadSingleResponse
//	@Failure		400		{object}	uploadErrorResponse
//	@Router			/upload/single [post]
func (h *UploadHandler) Single(w http.ResponseWriter, r *http.Request) {
	files, ok := h.parseFiles(w, r, "image", 1)
	if !ok {
		return
	}

	ref, err := h.catalogUC.UploadImage(r.Context(), files[0])
	if err != nil {
		h.writeError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, uploadSingleResponse{
		Success: true,
		Data:    imagePayload{StorageID: ref.StorageID, URL: ref.URL},
	})
}

// Multiple
//
//	@Summary		Загрузка нескольких изображений
//	@Description	Проксирует файлы на эндпоинт загрузки бэкенда; порядок дескрипторов — порядок ответа бэкенда
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			images	formData	file	true	"Файлы изображений"
//	@Success		200		{object}	uploadMultipleResponse
//	@Failure		400		{object}	uploadErrorResponse
//	@Router			/upload/multiple [post]
func (h *UploadHandler) Multiple(w http.ResponseWriter, r *http.Request) {
	files, ok := h.parseFiles(w, r, "images", h.cfg.MaxFilesPerReq)
	if !ok {
		return
	}

	refs, err := h.catalogUC.UploadImages(r.Context(), files)
	if err != nil {
		h.writeError(w, err)
		return
	}

	payload := make([]imagePayload, 0, len(refs))
	for _, ref := range refs {
		payload = append(payload, imagePayload{StorageID: ref.StorageID, URL: ref.URL})
	}

	WriteJSON(w, http.StatusOK, uploadMultipleResponse{Success: true, Data: payload})
}

func (h *UploadHandler) parseFiles(w http.ResponseWriter, r *http.Request, field string, maxCount int) ([]usecase.UploadFile, bool) {
	const maxMemory = 32 << 20

	maxTotal := h.cfg.MaxFileSize*int64(maxCount) + maxMemory
	r.Body = http.MaxBytesReader(w, r.Body, maxTotal)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrExpectedMultipart.Error(), r.Header.Get("Content-Type"))
		h.writeError(w, err)
		return nil, false
	}

	files, err := parseUploadFiles(r.MultipartForm.File[field], maxCount, h.cfg.MaxFileSize)
	if err != nil {
		h.logger.Warnf("%d upload rejected: %s", http.StatusBadRequest, err.Error())
		h.writeError(w, err)
		return nil, false
	}

	return files, true
}

// writeError отвечает формой ошибки бэкенда: success=false и message.
func (h *UploadHandler) writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if errors.Is(err, e.ErrInternalServerError) {
		status = http.StatusInternalServerError
	}

	WriteJSON(w, status, uploadErrorResponse{Success: false, Message: displayMessage(err)})
}
