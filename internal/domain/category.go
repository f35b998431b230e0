package domain

// Category описывает категорию каталога. У сохраненной категории
// ровно один дескриптор изображения.
type Category struct {
	ID    string
	Title string `validate:"required"`
	Image ImageRef
}

// NewCategory возвращает категорию с пустыми значениями для формы создания.
func NewCategory() *Category {
	return &Category{}
}
