package commands

import (
	"bytes"
	"html/template"
	"log/slog"

	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var noticeTemplate = template.Must(template.New("notice").Parse(`<p>Hello {{.Recipient}},</p>
<p>{{.Lead}}</p>
<ul>
<li>Name: {{.Contact.Name}}</li>
<li>Email: {{.Contact.Email}}</li>
{{- if .Contact.Phone}}
<li>Phone: {{.Contact.Phone}}</li>
{{- end}}
{{- if .Contact.City}}
<li>City: {{.Contact.City}}</li>
{{- end}}
</ul>
<p>Donation reference: {{.DonationID}}</p>`))

type noticeData struct {
	Recipient  string
	Lead       string
	Contact    *shared.Contact
	DonationID uuid.UUID
}

// approvalNotice tells the donor who they approved. This is the first point
// where the organization's contact details are disclosed.
func approvalNotice(donor, org *shared.Contact, donationID uuid.UUID) shared.Message {
	return shared.Message{
		To:      donor.Email,
		Subject: "Your donation has been reserved",
		HTMLBody: renderNotice(noticeData{
			Recipient:  donor.Name,
			Lead:       "You approved a request for your donation. Please coordinate pickup with the organization below.",
			Contact:    org,
			DonationID: donationID,
		}),
	}
}

func completionNotice(donor, org *shared.Contact, donationID uuid.UUID) shared.Message {
	return shared.Message{
		To:      org.Email,
		Subject: "Donation pickup completed",
		HTMLBody: renderNotice(noticeData{
			Recipient:  org.Name,
			Lead:       "Thank you for completing the pickup. The donor's details are below.",
			Contact:    donor,
			DonationID: donationID,
		}),
	}
}

func renderNotice(data noticeData) string {
	var buf bytes.Buffer
	if err := noticeTemplate.Execute(&buf, data); err != nil {
		slog.Warn("failed to render notice", "error", err.Error())
		return ""
	}
	return buf.String()
}
