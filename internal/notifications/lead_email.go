package notifications

import (
	"bytes"
	"html/template"
	"time"

	"github.com/suyashwaghate123/happyhomesbackend/internal/leads"
)

const leadNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h2>New {{.Kind}} Inquiry Received</h2>
  <p><strong>Name:</strong> {{.Lead.Name}}</p>
  <p><strong>Email:</strong> {{.Lead.Email}}</p>
  <p><strong>Phone:</strong> {{.Lead.Phone}}</p>
  {{if .Lead.Subject}}<p><strong>Subject:</strong> {{.Lead.Subject}}</p>{{end}}
  {{if .Lead.ServiceInterested}}<p><strong>Service Interested:</strong> {{.Lead.ServiceInterested}}</p>{{end}}
  {{if .Lead.AppointmentDate}}<p><strong>Preferred Date:</strong> {{.Lead.AppointmentDate.Format "02 Jan 2006"}}</p>{{end}}
  {{if .Lead.AppointmentTime}}<p><strong>Preferred Time:</strong> {{.Lead.AppointmentTime}}</p>{{end}}
  <p><strong>Message:</strong></p>
  <p>{{if .Lead.Message}}{{.Lead.Message}}{{else}}No message provided{{end}}</p>
  <hr>
  <p>Received at: {{.ReceivedAt.Format "02 Jan 2006 15:04"}}</p>
</body>
</html>`

const autoReplyTemplate = `<!DOCTYPE html>
<html>
<body>
  <h2>Dear {{.Name}},</h2>
  <p>Thank you for reaching out to Happy Homes. We have received your inquiry and our team will get back to you within 24 hours.</p>
  <p>In the meantime, feel free to call us at <strong>+91-9876543210</strong> for immediate assistance.</p>
  <br>
  <p>Warm Regards,</p>
  <p><strong>Happy Homes Team</strong></p>
  <p>123, Green Valley Road, Koregaon Park, Pune - 411001</p>
  <p>Phone: +91-9876543210 | Email: info@happyhomes.com</p>
</body>
</html>`

const visitNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h2>New Visit Request Received</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  {{if .Email}}<p><strong>Email:</strong> {{.Email}}</p>{{end}}
  <p><strong>Service Interested:</strong> {{.Service}}</p>
  <p><strong>Visit Date:</strong> {{.VisitDate}}</p>
  <p><strong>Visit Time:</strong> {{.VisitTime}}</p>
  <p>Visit request from website popup</p>
</body>
</html>`

var (
	leadNotificationTmpl  = template.Must(template.New("lead_notification").Parse(leadNotificationTemplate))
	autoReplyTmpl         = template.Must(template.New("lead_auto_reply").Parse(autoReplyTemplate))
	visitNotificationTmpl = template.Must(template.New("visit_notification").Parse(visitNotificationTemplate))
)

type leadNotificationData struct {
	Lead       leads.Lead
	Kind       string
	ReceivedAt time.Time
}

func buildLeadNotificationHTML(lead leads.Lead, kind string) (string, error) {
	var buf bytes.Buffer
	data := leadNotificationData{Lead: lead, Kind: kind, ReceivedAt: time.Now()}
	if err := leadNotificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildAutoReplyHTML(lead leads.Lead) (string, error) {
	var buf bytes.Buffer
	if err := autoReplyTmpl.Execute(&buf, lead); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildVisitNotificationHTML(visitor leads.Visitor) (string, error) {
	var buf bytes.Buffer
	if err := visitNotificationTmpl.Execute(&buf, visitor); err != nil {
		return "", err
	}
	return buf.String(), nil
}
