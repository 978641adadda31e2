package middleware

// MetricsRecorder счётчики HTTP запросов
type MetricsRecorder interface {
	ObserveHTTP(method, route, status string, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
