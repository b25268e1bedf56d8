package managers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/matcornic/hermes/v2"
	log "github.com/sirupsen/logrus"

	"heritage-server/internal/config"
)

const productName = "Bharat Heritage"

// MailMgr is an interface that outlines the contract for email management.
// It includes methods for sending verification and confirmation emails.
type MailMgr interface {
	SendVerificationMail(ctx context.Context, email, username, token string) error
	SendConfirmationMail(ctx context.Context, email, username string) error
}

// MailManager is a concrete implementation of the MailMgr interface.
// It uses the Mailgun service for sending emails and the Hermes package for formatting emails.
type MailManager struct {
	Hermes     *hermes.Hermes
	Mailgun    *mailgun.MailgunImpl
	cfg        config.Mail
	production bool
}

// SendVerificationMail sends the link the user has to open to verify the email address.
func (mm *MailManager) SendVerificationMail(ctx context.Context, email, username, token string) error {
	if !mm.production {
		log.Infof("Skipping verification mail in development mode, link: %s", mm.verificationLink(token))
		return nil
	}

	emailBody, err := mm.verificationMailBody(username, token)
	if err != nil {
		return err
	}

	return mm.send(ctx, email, "Verify your email address", emailBody)
}

// SendConfirmationMail sends a confirmation email to a user to confirm that their account has been verified.
func (mm *MailManager) SendConfirmationMail(ctx context.Context, email, username string) error {
	if !mm.production {
		log.Info("Skipping confirmation mail in development mode")
		return nil
	}

	emailBody, err := mm.confirmationMailBody(username)
	if err != nil {
		return err
	}

	return mm.send(ctx, email, "Email address verified", emailBody)
}

func (mm *MailManager) verificationMailBody(username, token string) (string, error) {
	return mm.Hermes.GenerateHTML(hermes.Email{
		Body: hermes.Body{
			Name: username,
			Intros: []string{
				fmt.Sprintf("Welcome to %s! We're very excited to have you on board.", productName),
			},
			Actions: []hermes.Action{
				{
					Instructions: "To verify your email address, please click the button below. The link is valid for 24 hours.",
					Button: hermes.Button{
						Color: "#b45309",
						Text:  "Verify email",
						Link:  mm.verificationLink(token),
					},
				},
			},
			Outros: []string{
				"If you did not create an account, no further action is required.",
			},
		},
	})
}

func (mm *MailManager) confirmationMailBody(username string) (string, error) {
	return mm.Hermes.GenerateHTML(hermes.Email{
		Body: hermes.Body{
			Name: username,
			Intros: []string{
				"Your email address has been verified successfully!",
			},
			Outros: []string{
				fmt.Sprintf("Have fun exploring %s.", productName),
			},
		},
	})
}

func (mm *MailManager) verificationLink(token string) string {
	return strings.TrimSuffix(mm.cfg.FrontendURL, "/") + "/verify-email?token=" + url.QueryEscape(token)
}

// send delivers the message, it gives up after the configured mail timeout.
func (mm *MailManager) send(ctx context.Context, email, subject, html string) error {
	ctx, cancel := context.WithTimeout(ctx, mm.cfg.Timeout)
	defer cancel()

	message := mm.Mailgun.NewMessage(mm.cfg.Sender, subject, "", email)
	message.SetHtml(html)
	_, _, err := mm.Mailgun.Send(ctx, message)
	if err != nil {
		log.Warning("Error sending mail: " + err.Error())
		return err
	}
	log.Debug("Mail sent to ", email)

	return nil
}

// NewMailManager initializes a new MailManager instance with configured Mailgun and Hermes settings.
// Outside of production mails are only logged.
func NewMailManager(cfg config.Mail, production bool) *MailManager {
	log.Info("Initializing mail manager")
	if !production {
		log.Info("Running in development mode, email will not be sent to users")
	}

	mailgunInstance := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.EURegion {
		mailgunInstance.SetAPIBase(mailgun.APIBaseEU)
	}

	mm := &MailManager{
		Hermes: &hermes.Hermes{
			Theme:         new(hermes.Default),
			TextDirection: hermes.TDLeftToRight,
			Product: hermes.Product{
				Name:        productName,
				Link:        cfg.FrontendURL,
				Copyright:   "© Bharat Heritage",
				TroubleText: "If you’re having trouble with the button '{ACTION}', copy and paste the URL below into your web browser.",
			},
		},
		Mailgun:    mailgunInstance,
		cfg:        cfg,
		production: production,
	}
	log.Info("Initialized mail manager")
	return mm
}
