package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendgridMailer implements handlers.Mailer through SendGrid.
type SendgridMailer struct {
	client *sendgrid.Client
	appURL string
}

func NewSendgridMailer(apiKey, appURL string) *SendgridMailer {
	return &SendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		appURL: appURL,
	}
}

// SendUserInvitation mails a registration link carrying the invitation hash.
func (m *SendgridMailer) SendUserInvitation(email, hash string) error {
	from := mail.NewEmail("Gatehouse", "donotreply@gatehouse.app")
	subject := "You have been invited"

	to := mail.NewEmail("", email)

	link := fmt.Sprintf("%s/register/%s", m.appURL, hash)
	plainTextContent := fmt.Sprintf("You have been invited to create an account. Open %s to finish registering.", link)
	htmlContent := fmt.Sprintf(`<p>You have been invited to create an account.</p><p><a href="%s">Complete your registration</a></p>`, link)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	response, err := m.client.Send(message)
	if err != nil {
		log.Println("Error sending invitation email:", err)
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("invitation email rejected with status %d", response.StatusCode)
	}

	log.Println("invitation email sent to: ", email)
	return nil
}
