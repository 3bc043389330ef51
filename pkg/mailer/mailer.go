package mailer

import (
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=pkgmocks github.com/chromacraft/chromacraft/pkg/mailer Mailer

// Mailer is the interface for sending transactional emails
type Mailer interface {
	// SendQuoteConfirmation sends a confirmation to the customer after a quote request
	SendQuoteConfirmation(email, name string, quoteID int64) error
	// SendQuoteAlert notifies the shop admin about a new quote request
	SendQuoteAlert(adminEmail, customerName, vehicleType, serviceType string, quoteID int64) error
	// SendGiftCertificate delivers a gift certificate code to its recipient
	SendGiftCertificate(email, recipientName, code string, amountCents int64, message string) error
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	SiteURL      string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// SendQuoteConfirmation sends a confirmation to the customer after a quote request
func (m *SMTPMailer) SendQuoteConfirmation(email, name string, quoteID int64) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(email); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	subject := "We received your quote request"
	msg.Subject(subject)

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>Thanks for your quote request!</h1>
			<p>Hi %s,</p>
			<p>We received your request (reference #%d) and our team will review it shortly.</p>
			<p>We usually reply within one business day with an estimate or follow-up questions.</p>
			<p>In the meantime, feel free to browse our recent work: <a href="%s/gallery">%s/gallery</a></p>
			<p>Thanks,<br>%s</p>
		</body>
	</html>`, name, quoteID, m.config.SiteURL, m.config.SiteURL, m.config.FromName)

	plainBody := fmt.Sprintf(
		"Hi %s,\n\nWe received your quote request (reference #%d) and our team will review it shortly.\n\n"+
			"We usually reply within one business day.\n\n"+
			"Thanks,\n%s", name, quoteID, m.config.FromName)

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// For testing - log information if client is nil
	if client == nil {
		log.Printf("Sending quote confirmation to: %s (quote #%d)", email, quoteID)
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send quote confirmation email: %w", err)
	}

	return nil
}

// SendQuoteAlert notifies the shop admin about a new quote request
func (m *SMTPMailer) SendQuoteAlert(adminEmail, customerName, vehicleType, serviceType string, quoteID int64) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(adminEmail); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	subject := fmt.Sprintf("New quote request #%d from %s", quoteID, customerName)
	msg.Subject(subject)

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>New quote request</h1>
			<p><strong>Customer:</strong> %s</p>
			<p><strong>Vehicle:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p>View it in the admin dashboard: <a href="%s/admin/quotes/%d">quote #%d</a></p>
		</body>
	</html>`, customerName, vehicleType, serviceType, m.config.SiteURL, quoteID, quoteID)

	plainBody := fmt.Sprintf(
		"New quote request #%d\n\nCustomer: %s\nVehicle: %s\nService: %s\n",
		quoteID, customerName, vehicleType, serviceType)

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	if client == nil {
		log.Printf("Sending quote alert to: %s (quote #%d)", adminEmail, quoteID)
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send quote alert email: %w", err)
	}

	return nil
}

// SendGiftCertificate delivers a gift certificate code to its recipient
func (m *SMTPMailer) SendGiftCertificate(email, recipientName, code string, amountCents int64, message string) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(email); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	subject := "You received a gift certificate"
	msg.Subject(subject)

	amount := fmt.Sprintf("$%.2f", float64(amountCents)/100)

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>You received a %s gift certificate!</h1>
			<p>Hi %s,</p>
			<p>Your gift certificate code is:</p>
			<h2 style="font-size: 24px; letter-spacing: 3px; background-color: #f5f5f5; padding: 15px; display: inline-block; border-radius: 5px;">%s</h2>
			<p>%s</p>
			<p>Redeem it on any service or product at %s.</p>
			<p>Thanks,<br>%s</p>
		</body>
	</html>`, amount, recipientName, code, message, m.config.SiteURL, m.config.FromName)

	plainBody := fmt.Sprintf(
		"Hi %s,\n\nYou received a %s gift certificate!\n\nYour code: %s\n\n%s\n\n"+
			"Thanks,\n%s", recipientName, amount, code, message, m.config.FromName)

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	if client == nil {
		log.Printf("Sending gift certificate %s to: %s", code, email)
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send gift certificate email: %w", err)
	}

	return nil
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	// In test mode, return nil client to avoid SMTP connections
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Only add authentication if username and password are provided
	// This allows for unauthenticated SMTP servers (e.g., local relays, port 25)
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer is a development implementation that just logs emails
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// SendQuoteConfirmation logs the confirmation details to console
func (m *ConsoleMailer) SendQuoteConfirmation(email, name string, quoteID int64) error {
	fmt.Println("==============================================================")
	fmt.Println("                 QUOTE CONFIRMATION EMAIL                     ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", email)
	fmt.Printf("Subject: We received your quote request\n\n")
	fmt.Printf("Hi %s,\n\n", name)
	fmt.Printf("We received your quote request (reference #%d).\n", quoteID)
	fmt.Println("==============================================================")

	return nil
}

// SendQuoteAlert logs the alert details to console
func (m *ConsoleMailer) SendQuoteAlert(adminEmail, customerName, vehicleType, serviceType string, quoteID int64) error {
	fmt.Println("==============================================================")
	fmt.Println("                 NEW QUOTE ALERT EMAIL                        ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", adminEmail)
	fmt.Printf("Subject: New quote request #%d from %s\n\n", quoteID, customerName)
	fmt.Printf("Vehicle: %s\n", vehicleType)
	fmt.Printf("Service: %s\n", serviceType)
	fmt.Println("==============================================================")

	return nil
}

// SendGiftCertificate logs the gift certificate details to console
func (m *ConsoleMailer) SendGiftCertificate(email, recipientName, code string, amountCents int64, message string) error {
	fmt.Println("==============================================================")
	fmt.Println("                 GIFT CERTIFICATE EMAIL                       ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", email)
	fmt.Printf("Subject: You received a gift certificate\n\n")
	fmt.Printf("Hi %s,\n\n", recipientName)
	fmt.Printf("Your gift certificate code is: %s ($%.2f)\n\n", code, float64(amountCents)/100)
	if message != "" {
		fmt.Printf("Message: %s\n", message)
	}
	fmt.Println("==============================================================")

	return nil
}
