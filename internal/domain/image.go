package domain

import "slices"

// ImageRef описывает дескриптор загруженного изображения: идентификатор
// в хранилище бэкенда и публичный URL. Байтами изображения клиент не владеет.
type ImageRef struct {
	StorageID string
	URL       string
}

// MoveImage перемещает элемент последовательности с индекса from на индекс to,
// сдвигая промежуточные элементы. Элемент с индексом 0 — главное изображение.
// Индексы вне диапазона и from == to возвращают последовательность без изменений.
func MoveImage(images []ImageRef, from, to int) []ImageRef {
	if from < 0 || from >= len(images) || to < 0 || to >= len(images) || from == to {
		return images
	}

	res := slices.Clone(images)
	moved := res[from]
	res = slices.Delete(res, from, from+1)
	return slices.Insert(res, to, moved)
}

// RemoveImage удаляет элемент с индексом i, сохраняя относительный порядок
// остальных. Индекс вне диапазона возвращает последовательность без изменений.
func RemoveImage(images []ImageRef, i int) []ImageRef {
	if i < 0 || i >= len(images) {
		return images
	}

	res := slices.Clone(images)
	return slices.Delete(res, i, i+1)
}
