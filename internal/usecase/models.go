package usecase

// UploadFile представляет файл, принятый через multipart/form-data
// и пересылаемый на эндпоинт загрузки бэкенда.
type UploadFile struct {
	Data     []byte // байты файла
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов и multipart)
}

// NewUploadFile создает UploadFile.
func NewUploadFile(data []byte, mimeType string, size int64, name string) *UploadFile {
	return &UploadFile{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}
