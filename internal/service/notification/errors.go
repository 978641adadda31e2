package notification

import "errors"

var (
	// ErrRender возвращается, если шаблон письма не удалось отрендерить
	ErrRender = errors.New("notification: failed to render confirmation")

	// ErrSenderPanic оборачивает панику механизма доставки
	ErrSenderPanic = errors.New("notification: sender panicked")
)
