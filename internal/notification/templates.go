package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
)

var teamTmpl = template.Must(template.New("team").Parse(`<h2>New booking</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
{{- if .Email}}
<p><strong>Email:</strong> {{.Email}}</p>
{{- end}}
<p><strong>Service:</strong> {{.Service}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.Time}}</p>
`))

var customerTmpl = template.Must(template.New("customer").Parse(`<h2>Your booking is confirmed</h2>
<p>Hi {{.Name}},</p>
<p>Thanks for booking with Inshape. Here are your details:</p>
<p><strong>Service:</strong> {{.Service}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.Time}}</p>
<p>If you need to change anything, just reply to this email.</p>
`))

type templateData struct {
	Name    string
	Phone   string
	Email   string
	Service string
	Date    string
	Time    string
}

func dataFor(r booking.Request) templateData {
	d := templateData{
		Name:    r.Name,
		Phone:   r.Phone,
		Service: r.Service,
		Date:    r.Date,
		Time:    r.Time,
	}
	if r.HasEmail() {
		d.Email = r.Email
	}
	return d
}

func render(t *template.Template, r booking.Request) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, dataFor(r)); err != nil {
		return "", fmt.Errorf("render %s email: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// TeamNotification is sent to the team inbox for every booking.
func TeamNotification(from, to string, r booking.Request) (booking.Message, error) {
	html, err := render(teamTmpl, r)
	if err != nil {
		return booking.Message{}, err
	}
	return booking.Message{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("New booking: %s - %s", r.Service, r.Name),
		HTML:    html,
	}, nil
}

// CustomerConfirmation is sent to the customer when they left an address.
func CustomerConfirmation(from string, r booking.Request) (booking.Message, error) {
	html, err := render(customerTmpl, r)
	if err != nil {
		return booking.Message{}, err
	}
	return booking.Message{
		From:    from,
		To:      r.Email,
		Subject: fmt.Sprintf("Your %s booking is confirmed", r.Service),
		HTML:    html,
	}, nil
}
