package seed

import "errors"

var (
	// ErrReadFile возвращается, если файл каталога не удалось прочитать
	ErrReadFile = errors.New("seed: failed to read catalog file")

	// ErrParseFile возвращается при некорректном YAML
	ErrParseFile = errors.New("seed: failed to parse catalog file")

	// ErrInvalidCatalog возвращается, если каталог не прошёл валидацию
	ErrInvalidCatalog = errors.New("seed: invalid catalog")

	// ErrStore возвращается, если категорию не удалось сохранить
	ErrStore = errors.New("seed: failed to store offering")
)
