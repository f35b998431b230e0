package e

import (
	"errors"
	"fmt"
)

var (
	// 400 Bad Request
	ErrMissingFields     = fmt.Errorf("required fields are missing")
	ErrInvalidPrice      = fmt.Errorf("invalid price")
	ErrPricePrecision    = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidStock      = fmt.Errorf("invalid stock value")
	ErrExpectedMultipart = fmt.Errorf("expected multipart/form-data")
	ErrNoFiles           = fmt.Errorf("no files provided")
	ErrTooManyFiles      = fmt.Errorf("too many files")
	ErrFileTooLarge      = fmt.Errorf("file too large")

	// Ошибки обмена с бэкендом каталога
	ErrMalformedResponse = fmt.Errorf("malformed backend response")

	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// genericRequestMessage показывается, когда бэкенд не прислал поле message.
const genericRequestMessage = "something went wrong"

// RequestError — нормализованная ошибка вызова бэкенда: HTTP-статус ответа и
// сообщение из поля message (или общее сообщение, если бэкенд его не прислал).
type RequestError struct {
	Status  int
	Message string
}

func NewRequestError(status int, message string) *RequestError {
	if message == "" {
		message = genericRequestMessage
	}

	return &RequestError{Status: status, Message: message}
}

func (r *RequestError) Error() string {
	return r.Message
}

// BackendMessage возвращает сообщение бэкенда, если в цепочке err есть
// RequestError, иначе пустую строку.
func BackendMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return ""
}
