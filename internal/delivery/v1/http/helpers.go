package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// parsePrice разбирает строку вида "599.99" или "600" в decimal.
// Отклоняет пустой ввод, отрицательные значения, больше двух знаков
// после запятой и значения свыше разумного предела.
func parsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return decimal.Zero, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return decimal.Zero, e.ErrPricePrecision
	}

	return d, nil
}

// parseOptionalPrice нормализует необязательную цену:
// пустой ввод — это явное отсутствие значения, а не пустая строка.
func parseOptionalPrice(s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	d, err := parsePrice(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// displayMessage возвращает сообщение для показа пользователю:
// дословное сообщение бэкенда, если оно есть, иначе текст ошибки.
func displayMessage(err error) string {
	if msg := e.BackendMessage(err); msg != "" {
		return msg
	}
	return err.Error()
}

// statusForError сопоставляет ошибку с HTTP-статусом ответа панели.
func statusForError(err error) int {
	var reqErr *e.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status
	}

	switch {
	case errors.Is(err, e.ErrExpectedMultipart),
		errors.Is(err, e.ErrNoFiles),
		errors.Is(err, e.ErrTooManyFiles),
		errors.Is(err, e.ErrFileTooLarge),
		errors.Is(err, e.ErrMissingFields),
		errors.Is(err, e.ErrInvalidPrice),
		errors.Is(err, e.ErrPricePrecision),
		errors.Is(err, e.ErrInvalidStock):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseUploadFiles читает файлы из multipart-формы с проверкой лимитов.
func parseUploadFiles(files []*multipart.FileHeader, maxCount int, maxSize int64) ([]usecase.UploadFile, error) {
	if len(files) == 0 {
		return nil, e.ErrNoFiles
	}
	if len(files) > maxCount {
		return nil, e.ErrTooManyFiles
	}

	uploads := make([]usecase.UploadFile, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxSize)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *usecase.NewUploadFile(data, mimeType, int64(len(data)), fh.Filename))
	}
	return uploads, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
