// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"html/template"
)

// AppointmentNotificationData contains the data for the email sent to the
// firm when a visitor requests an appointment.
type AppointmentNotificationData struct {
	SiteName      string
	Name          string
	Email         string
	Phone         string
	PracticeArea  string
	TeamMember    string
	PreferredDate string
	Message       string
	AdminURL      string
}

// AppointmentNotificationEmail generates both plain text and HTML versions
// of the new-appointment notification.
func AppointmentNotificationEmail(data AppointmentNotificationData) (textBody, htmlBody string) {
	textBody = "A new appointment request was submitted on " + data.SiteName + ".\n\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n" +
		"Phone: " + data.Phone + "\n"
	if data.PracticeArea != "" {
		textBody += "Practice area: " + data.PracticeArea + "\n"
	}
	if data.TeamMember != "" {
		textBody += "Requested lawyer: " + data.TeamMember + "\n"
	}
	if data.PreferredDate != "" {
		textBody += "Preferred date: " + data.PreferredDate + "\n"
	}
	if data.Message != "" {
		textBody += "\nMessage:\n" + data.Message + "\n"
	}
	textBody += "\nReview it in the admin console:\n" + data.AdminURL

	var buf bytes.Buffer
	appointmentHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// ApplicationNotificationData contains the data for the email sent to the
// firm when someone applies to an open position.
type ApplicationNotificationData struct {
	SiteName   string
	JobTitle   string
	Name       string
	Email      string
	Phone      string
	ResumeName string
	CoverNote  string
	AdminURL   string
}

// ApplicationNotificationEmail generates both plain text and HTML versions
// of the new-application notification.
func ApplicationNotificationEmail(data ApplicationNotificationData) (textBody, htmlBody string) {
	textBody = "A new application for \"" + data.JobTitle + "\" was submitted on " + data.SiteName + ".\n\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n" +
		"Phone: " + data.Phone + "\n"
	if data.ResumeName != "" {
		textBody += "Resume: " + data.ResumeName + "\n"
	}
	if data.CoverNote != "" {
		textBody += "\nCover note:\n" + data.CoverNote + "\n"
	}
	textBody += "\nReview it in the admin console:\n" + data.AdminURL

	var buf bytes.Buffer
	applicationHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

const notificationHTMLTop = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 520px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">`

const notificationHTMLBottom = `
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr>
                  <td align="center" style="padding: 24px 0 0 0;">
                    <a href="{{.AdminURL}}" style="display: inline-block; padding: 14px 32px; background-color: #1a2b4a; color: #ffffff; text-decoration: none; font-size: 15px; font-weight: 600; border-radius: 6px;">Open Admin Console</a>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

var appointmentHTMLTmpl = template.Must(template.New("appointment_notification").Parse(
	notificationHTMLTop + `
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">New Appointment Request</h2>
              <p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Name:</strong> {{.Name}}</p>
              <p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Email:</strong> {{.Email}}</p>
              <p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Phone:</strong> {{.Phone}}</p>
              {{if .PracticeArea}}<p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Practice area:</strong> {{.PracticeArea}}</p>{{end}}
              {{if .TeamMember}}<p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Requested lawyer:</strong> {{.TeamMember}}</p>{{end}}
              {{if .PreferredDate}}<p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Preferred date:</strong> {{.PreferredDate}}</p>{{end}}
              {{if .Message}}<p style="margin: 16px 0 0 0; font-size: 15px; line-height: 1.6; color: #52525b;">{{.Message}}</p>{{end}}` +
		notificationHTMLBottom))

var applicationHTMLTmpl = template.Must(template.New("application_notification").Parse(
	notificationHTMLTop + `
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">New Application: {{.JobTitle}}</h2>
              <p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Name:</strong> {{.Name}}</p>
              <p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Email:</strong> {{.Email}}</p>
              <p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Phone:</strong> {{.Phone}}</p>
              {{if .ResumeName}}<p style="margin: 0 0 8px 0; font-size: 15px; color: #52525b;"><strong style="color: #18181b;">Resume:</strong> {{.ResumeName}}</p>{{end}}
              {{if .CoverNote}}<p style="margin: 16px 0 0 0; font-size: 15px; line-height: 1.6; color: #52525b;">{{.CoverNote}}</p>{{end}}` +
		notificationHTMLBottom))
