// Package notify delivers best-effort alerts to the institute when a new
// admission inquiry arrives. Failures are logged and absorbed; nothing here
// ever reaches the HTTP caller.
package notify

import (
	"context"
	"fmt"
	"time"

	"app/internal/config"
	"app/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Dispatcher fires outbound alerts for domain events.
type Dispatcher interface {
	InquiryCreated(ctx context.Context, inq *model.Inquiry)
}

type dispatcher struct {
	client *resty.Client
	cfg    *config.Config
	logger zerolog.Logger
}

// New builds the default dispatcher. Channels without credentials degrade to
// logged simulation, not errors.
func New(cfg *config.Config, logger zerolog.Logger) Dispatcher {
	client := resty.New().SetTimeout(10 * time.Second)
	return &dispatcher{client: client, cfg: cfg, logger: logger}
}

func (d *dispatcher) InquiryCreated(ctx context.Context, inq *model.Inquiry) {
	d.sendWhatsApp(ctx, inq)
	d.sendEmail(inq)
}

// whatsAppMessage is the template-message payload of the WhatsApp Cloud API.
type whatsAppMessage struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Template         whatsAppTemplate `json:"template"`
}

type whatsAppTemplate struct {
	Name       string              `json:"name"`
	Language   whatsAppLanguage    `json:"language"`
	Components []whatsAppComponent `json:"components"`
}

type whatsAppLanguage struct {
	Code string `json:"code"`
}

type whatsAppComponent struct {
	Type       string              `json:"type"`
	Parameters []whatsAppParameter `json:"parameters"`
}

type whatsAppParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (d *dispatcher) sendWhatsApp(ctx context.Context, inq *model.Inquiry) {
	if d.cfg.WhatsAppToken == "" || d.cfg.WhatsAppSenderID == "" || d.cfg.WhatsAppRecipient == "" {
		d.logger.Info().
			Str("inquiry_id", inq.ID).
			Str("name", inq.Name).
			Str("course", inq.CourseInterested).
			Msg("WhatsApp credentials not configured, simulating inquiry alert")
		return
	}

	payload := whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               d.cfg.WhatsAppRecipient,
		Type:             "template",
		Template: whatsAppTemplate{
			Name:     "new_inquiry_alert",
			Language: whatsAppLanguage{Code: "en"},
			Components: []whatsAppComponent{{
				Type: "body",
				Parameters: []whatsAppParameter{
					{Type: "text", Text: inq.Name},
					{Type: "text", Text: inq.Phone},
					{Type: "text", Text: inq.CourseInterested},
				},
			}},
		},
	}

	url := fmt.Sprintf("%s/%s/messages", d.cfg.WhatsAppAPIBase, d.cfg.WhatsAppSenderID)
	resp, err := d.client.R().
		SetContext(ctx).
		SetAuthToken(d.cfg.WhatsAppToken).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		d.logger.Error().Err(err).Str("inquiry_id", inq.ID).Msg("WhatsApp inquiry alert failed")
		return
	}
	if resp.IsError() {
		d.logger.Error().
			Int("status", resp.StatusCode()).
			Str("inquiry_id", inq.ID).
			Str("body", resp.String()).
			Msg("WhatsApp inquiry alert rejected")
		return
	}
	d.logger.Info().Str("inquiry_id", inq.ID).Msg("WhatsApp inquiry alert sent")
}

func (d *dispatcher) sendEmail(inq *model.Inquiry) {
	if d.cfg.SendGridAPIKey == "" || d.cfg.AlertEmailFrom == "" || d.cfg.AlertEmailTo == "" {
		d.logger.Info().
			Str("inquiry_id", inq.ID).
			Msg("SendGrid credentials not configured, simulating inquiry email")
		return
	}

	email := ""
	if inq.Email != nil {
		email = *inq.Email
	}
	body := fmt.Sprintf(
		"New admission inquiry\n\nName: %s\nPhone: %s\nEmail: %s\nCourse: %s\nStatus: %s\n",
		inq.Name, inq.Phone, email, inq.CourseInterested, inq.Status)

	from := mail.NewEmail("Inquiry Alerts", d.cfg.AlertEmailFrom)
	to := mail.NewEmail("Admissions", d.cfg.AlertEmailTo)
	subject := "New inquiry: " + inq.Name
	message := mail.NewSingleEmail(from, subject, to, body, "")

	sg := sendgrid.NewSendClient(d.cfg.SendGridAPIKey)
	resp, err := sg.Send(message)
	if err != nil {
		d.logger.Error().Err(err).Str("inquiry_id", inq.ID).Msg("inquiry email failed")
		return
	}
	if resp.StatusCode >= 400 {
		d.logger.Error().
			Int("status", resp.StatusCode).
			Str("inquiry_id", inq.ID).
			Msg("inquiry email rejected")
		return
	}
	d.logger.Info().Str("inquiry_id", inq.ID).Msg("inquiry email sent")
}
