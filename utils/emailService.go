package utils

import (
	"fluency/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Println("SENDGRID_API_KEY not set, skipping email to", toEmail)
		return nil
	}

	from := mail.NewEmail("FluencyMastery", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid error: status %d", resp.StatusCode)
	}
	return nil
}

func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A1446; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1446; line-height: 1.6; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>FLUENCYMASTERY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; FluencyMastery. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendEnrollmentReceipt emails the student after a completed enrollment.
// Fire-and-forget: failures are logged and never surfaced to the caller.
func SendEnrollmentReceipt(email, name, courseTitle string, amount float64, transactionID string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your enrollment payment was received. Welcome aboard!</p>
		<div class="info-box">
			<strong>Course:</strong> %s<br>
			<strong>Amount:</strong> $%.2f<br>
			<strong>Transaction:</strong> %s
		</div>
		<p>You can find the course under your enrolled classes.</p>
	`, name, courseTitle, amount, transactionID)

	if err := SendEmail(email, name, "Your enrollment receipt", getEmailTemplate("Enrollment confirmed", body)); err != nil {
		log.Printf("Failed to send enrollment receipt to %s: %v", email, err)
	}
}
