package mailer

// Email письмо для отправки
type Email struct {
	To      string
	Subject string
	HTML    string
}

// sendRequest тело запроса POST /emails
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendResponse ответ почтового API
type sendResponse struct {
	ID string `json:"id"`
}

// ErrorResponse модель ошибки от почтового API
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}
