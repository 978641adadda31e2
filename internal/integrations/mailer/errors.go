package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrUnavailable возвращается, когда почтовый API недоступен или ответил 5xx
	ErrUnavailable = errors.New("mailer client: mail API unavailable")

	// ErrRejected возвращается, когда почтовый API отклонил письмо (4xx)
	ErrRejected = errors.New("mailer client: email rejected")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("mailer client: invalid response")
)
