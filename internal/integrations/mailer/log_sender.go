package mailer

import "context"

// LogSender только пишет письмо в лог. Используется, когда отправка почты выключена
type LogSender struct {
	log Logger
}

// NewLogSender создает отправитель, пишущий в лог
func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

// Send логирует письмо и всегда завершается успешно
func (s *LogSender) Send(ctx context.Context, email *Email) error {
	s.log.Info("Mail delivery disabled, email to %s with subject %q logged only", email.To, email.Subject)
	return nil
}
