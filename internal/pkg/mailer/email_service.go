// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendDownloadLink(toEmail, productName, downloadURL string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

// NewEmailService builds a dispatcher bound to one SMTP transport. The
// container creates two of these: one for admin OTP mail, one for
// customer-facing purchase confirmations.
func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Admin Login OTP")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #2563EB;">Admin Login Verification</h2>
			<p>Your OTP for admin login is:</p>
			<div style="background: #f3f4f6; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0;">
				<h1 style="color: #2563EB; margin: 0; letter-spacing: 8px;">%s</h1>
			</div>
			<p style="color: #6b7280;">This OTP will expire in 5 minutes.</p>
			<p style="color: #6b7280; font-size: 12px;">If you didn't request this, please ignore this email.</p>
		</div>
	`, otp)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}

func (s *emailService) SendDownloadLink(toEmail, productName, downloadURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your purchase: %s", productName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #2563EB;">Thank you for your purchase!</h2>
			<p>Your payment for <strong>%s</strong> was successful.</p>
			<p>Download your copy here:</p>
			<a href="%s" style="background-color: #2563EB; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Download</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p style="color: #6b7280; font-size: 12px;">If you have any trouble, just reply to this email.</p>
		</div>
	`, productName, downloadURL, downloadURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}
