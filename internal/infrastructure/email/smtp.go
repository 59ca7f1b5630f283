package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/lingo-hub/lingo/internal/domain/notification"
	"github.com/lingo-hub/lingo/internal/domain/project"
	"github.com/lingo-hub/lingo/internal/domain/user"
	"github.com/lingo-hub/lingo/internal/shared/config"
	"github.com/lingo-hub/lingo/internal/shared/logger"
	"github.com/lingo-hub/lingo/internal/shared/services/markdown"
)

// Sender is the part of gomail.Dialer the channel uses.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPChannel struct {
	sender      Sender
	renderer    markdown.Renderer
	fromAddress string
	fromName    string
	logger      logger.Interface
}

func NewSMTPChannel(cfg config.EmailConfig, renderer markdown.Renderer, logger logger.Interface) *SMTPChannel {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return NewSMTPChannelWithSender(dialer, cfg.FromAddress, cfg.FromName, renderer, logger)
}

func NewSMTPChannelWithSender(sender Sender, fromAddress, fromName string, renderer markdown.Renderer, logger logger.Interface) *SMTPChannel {
	return &SMTPChannel{
		sender:      sender,
		renderer:    renderer,
		fromAddress: fromAddress,
		fromName:    fromName,
		logger:      logger,
	}
}

func (c *SMTPChannel) Name() string {
	return "email"
}

// Deliver mails the notification. Recipients without an address are skipped.
func (c *SMTPChannel) Deliver(_ context.Context, n *notification.Notification, recipient *user.Contributor, source *project.Project) error {
	if recipient.Email() == "" {
		c.logger.Debugw("recipient has no email address, skipping",
			"recipient", recipient.Username(),
			"notification_id", n.ID(),
		)
		return nil
	}

	htmlBody, err := c.renderer.ToHTMLSanitized(n.Description())
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	if c.fromName != "" {
		m.SetAddressHeader("From", c.fromAddress, c.fromName)
	} else {
		m.SetHeader("From", c.fromAddress)
	}
	m.SetAddressHeader("To", recipient.Email(), recipient.DisplayName())
	m.SetHeader("Subject", fmt.Sprintf("%s is %s", source.Name(), n.Verb()))
	m.SetBody("text/plain", n.Description())
	m.AddAlternative("text/html", htmlBody)

	if err := c.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debugw("deadline email sent",
		"recipient", recipient.Username(),
		"notification_id", n.ID(),
	)
	return nil
}
