package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/integrations/mailer"
)

const subjectPrefix = "Booking Confirmation - "

var confirmationTemplate = template.Must(template.New("confirmation").Funcs(template.FuncMap{
	"price": func(v float64) string { return "$" + strconv.FormatFloat(v, 'f', -1, 64) },
}).Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Booking Confirmation - {{.BusinessName}}</title>
  </head>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h1>{{.BusinessName}}</h1>
      <h2>Booking Confirmation</h2>
      <p>Dear {{.CustomerName}},</p>
      <p>Thank you for booking our services! Your booking has been confirmed.</p>
      <div style="background: white; padding: 20px; border-left: 4px solid #3b82f6;">
        <h3>Booking Details</h3>
        <p><strong>Booking ID:</strong> {{.BookingID}}</p>
        <p><strong>Date:</strong> {{.Date}}</p>
        <p><strong>Time:</strong> {{.Time}}</p>
        <h4>Selected Services:</h4>
        {{range .Services}}<div style="padding: 8px 0; border-bottom: 1px solid #e2e8f0;">{{.}}</div>
        {{end}}
        <p style="font-weight: bold; font-size: 18px;">Total Price: {{price .Total}}</p>
      </div>
      <p>Our team will contact you within 24 hours to confirm the details.</p>
      {{if .SupportEmail}}<p>Questions or changes: {{.SupportEmail}}</p>{{end}}
      <p>Thank you for choosing {{.BusinessName}}!</p>
    </div>
  </body>
</html>
`))

type confirmationView struct {
	BusinessName string
	SupportEmail string
	CustomerName string
	BookingID    string
	Date         string
	Time         string
	Services     []string
	Total        float64
}

// render собирает письмо-подтверждение для бронирования
func (d *Dispatcher) render(booking *domain.Booking, serviceNames []string) (*mailer.Email, error) {
	view := confirmationView{
		BusinessName: d.cfg.BusinessName,
		SupportEmail: d.cfg.SupportEmail,
		CustomerName: booking.Customer.Name,
		BookingID:    booking.ID,
		Date:         d.policy.FormatDate(booking.Date),
		Time:         d.policy.FormatTime(booking.Time),
		Services:     serviceNames,
		Total:        booking.TotalPrice,
	}

	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, view); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return &mailer.Email{
		To:      booking.Customer.Email,
		Subject: subjectPrefix + booking.ID,
		HTML:    body.String(),
	}, nil
}
