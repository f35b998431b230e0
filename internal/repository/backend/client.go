package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/e"
	"github.com/beautix-tech/admin-panel/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

// Client — фасад исходящих HTTP-вызовов каталожного бэкенда. Проставляет
// JSON-заголовки, нормализует любой отказ (сеть, не-2xx статус, битый JSON)
// в одну форму ошибки и логирует его перед возвратом.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// Request выполняет JSON-вызов и возвращает сырое тело успешного ответа.
// При не-2xx статусе возвращает RequestError с сообщением бэкенда из поля
// message (или общим сообщением, если его нет).
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	return c.do(req, method, path)
}

// Multipart выполняет multipart/form-data запрос, прикладывая каждый файл
// под именем поля field. Заголовок Content-Type с boundary выставляет writer,
// JSON-заголовок здесь намеренно отсутствует.
func (c *Client) Multipart(ctx context.Context, path, field string, files []usecase.UploadFile) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.Name))
		header.Set("Content-Type", f.MimeType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())

	return c.do(req, http.MethodPost, path)
}

func (c *Client) do(req *http.Request, method, path string) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf(err, "backend request failed: %s %s", method, path)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Errorf(err, "backend response read failed: %s %s", method, path)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		reqErr := e.NewRequestError(resp.StatusCode, decodeMessage(data))
		c.logger.Warnf("backend responded %d on %s %s: %s", resp.StatusCode, method, path, reqErr.Message)
		return nil, reqErr
	}

	return data, nil
}

// decodeMessage достает поле message из тела ошибки; пустая строка,
// если тело не разбирается или поля нет.
func decodeMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
