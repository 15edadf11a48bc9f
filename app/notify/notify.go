// Package notify delivers save-failure alerts through email, slack, telegram
// and generic webhooks. Senders come from go-pkgz/notify and are picked by
// the destination URL schema.
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"
)

//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Notifier is the sender contract from go-pkgz/notify, aliased for mocking.
type Notifier = notify.Notifier

// Params sets message templates and delivery toggles.
type Params struct {
	EnabledFailure  bool   // deliver a message when a save exhausts its attempts
	FailureTemplate string // optional custom template file, default used when empty or broken
}

// SendersParams configures the concrete senders, empty blocks disable them.
type SendersParams struct {
	// email
	ToEmails     []string
	FromEmail    string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPTLS      bool
	SMTPStartTLS bool

	// slack
	SlackToken    string
	SlackChannels []string

	// telegram
	TelegramToken        string
	TelegramDestinations []string

	// webhook
	WebhookURLs    []string
	WebhookHeaders []string

	TimeOut time.Duration
}

// Service routes save-failure messages to every configured destination.
type Service struct {
	Params
	destinations  []notify.Notifier
	fromEmail     string
	toEmail       []string
	slackChannels []string
	telegramDests []string
	webhookURLs   []string
}

// NewService creates a notification service with the given senders. Returns
// nil when nothing is configured, callers treat a nil service as disabled.
func NewService(p Params, sp SendersParams) *Service {
	res := Service{
		Params:        p,
		fromEmail:     sp.FromEmail,
		toEmail:       sp.ToEmails,
		slackChannels: sp.SlackChannels,
		telegramDests: sp.TelegramDestinations,
		webhookURLs:   sp.WebhookURLs,
	}

	if len(sp.ToEmails) > 0 {
		res.destinations = append(res.destinations, notify.NewEmail(notify.SMTPParams{
			Host:     sp.SMTPHost,
			Port:     sp.SMTPPort,
			TLS:      sp.SMTPTLS,
			StartTLS: sp.SMTPStartTLS,
			Username: sp.SMTPUsername,
			Password: sp.SMTPPassword,
			TimeOut:  sp.TimeOut,
		}))
	}
	if sp.SlackToken != "" && len(sp.SlackChannels) > 0 {
		res.destinations = append(res.destinations, notify.NewSlack(sp.SlackToken))
	}
	if sp.TelegramToken != "" && len(sp.TelegramDestinations) > 0 {
		tg, err := notify.NewTelegram(notify.TelegramParams{Token: sp.TelegramToken, Timeout: sp.TimeOut})
		if err != nil {
			log.Printf("[WARN] telegram sender disabled, %v", err)
		} else {
			res.destinations = append(res.destinations, tg)
		}
	}
	if len(sp.WebhookURLs) > 0 {
		res.destinations = append(res.destinations, notify.NewWebhook(notify.WebhookParams{
			Timeout: sp.TimeOut,
			Headers: sp.WebhookHeaders,
		}))
	}

	if len(res.destinations) == 0 {
		return nil
	}
	return &res
}

// Send delivers the message to every destination, collecting errors instead
// of stopping at the first one.
func (s *Service) Send(ctx context.Context, subj, text string) error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, sender := range s.destinations {
		for _, destination := range s.destinationsFor(sender.Schema(), subj) {
			if err := sender.Send(ctx, destination, text); err != nil {
				log.Printf("[WARN] failed to send notification to %s, %v", destination, err)
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// IsOnFailure reports whether save failures should be delivered.
func (s *Service) IsOnFailure() bool { return s != nil && s.EnabledFailure }

// destinationsFor expands a sender schema into concrete destination URLs.
func (s *Service) destinationsFor(schema, subj string) []string {
	switch schema {
	case "mailto":
		if len(s.toEmail) == 0 {
			return nil
		}
		return []string{fmt.Sprintf("mailto:%s?from=%s&subject=%s",
			strings.Join(s.toEmail, ","), s.fromEmail, url.QueryEscape(subj))}
	case "slack":
		res := make([]string, 0, len(s.slackChannels))
		for _, ch := range s.slackChannels {
			res = append(res, fmt.Sprintf("slack:%s?title=%s", ch, url.QueryEscape(subj)))
		}
		return res
	case "telegram":
		res := make([]string, 0, len(s.telegramDests))
		for _, chat := range s.telegramDests {
			res = append(res, "telegram:"+chat)
		}
		return res
	case "http", "https":
		return s.webhookURLs
	}
	log.Printf("[WARN] unsupported notification schema %q", schema)
	return nil
}

// MakeSaveFailureHTML renders the failure message for a category file. A
// custom template that can't be read or parsed falls back to the default.
func (s *Service) MakeSaveFailureHTML(category, file, errorLog string) (string, error) {
	tmpl := defaultFailureTemplate
	if s != nil && s.FailureTemplate != "" {
		b, err := os.ReadFile(s.FailureTemplate)
		if err != nil {
			log.Printf("[WARN] can't read template %s, using default: %v", s.FailureTemplate, err)
		} else {
			tmpl = string(b)
		}
	}

	data := struct {
		Category string
		File     string
		TS       time.Time
		Error    string
		Host     string
	}{
		Category: category,
		File:     file,
		TS:       time.Now(),
		Error:    errorLog,
		Host:     hostname(),
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		log.Printf("[WARN] can't parse template %s, using default: %v", s.FailureTemplate, err)
		if t, err = template.New("msg").Parse(defaultFailureTemplate); err != nil {
			return "", fmt.Errorf("can't parse default message template: %w", err)
		}
	}
	buf := bytes.Buffer{}
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to apply message template: %w", err)
	}
	return buf.String(), nil
}

func hostname() string {
	if h := os.Getenv("MHOST"); h != "" {
		return h
	}
	h, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return h
}

const defaultFailureTemplate = `<!DOCTYPE html>
<html>
	<head>
		<meta name="viewport" content="width=device-width" />
		<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
		<style type="text/css">
			body {
				font-family: "Arial";
				font-size: 1.0em;
			}
			ul {
				margin-top: -0.5em;
				margin-left: -0.5em;
			}
			pre {
				padding: 0.6em;
				font-size: 0.7em;
				background-color: #E8E2A0;
				font-family: "Menlo";
				overflow-x: auto;
				white-space: pre-wrap;
				white-space: -moz-pre-wrap;
				white-space: -pre-wrap;
				white-space: -o-pre-wrap;
				word-wrap: break-word;
			}
			.bold {
				color: #882828;
				font-weight: 900;
			}
		</style>
	</head>

	<body>
		<p>Pitwall failed to save settings on <span class="bold">{{.Host}}</span> at {{.TS.Format "2006-01-02T15:04:05Z07:00"}}</p>
		<ul>
			<li>File: <span class="bold">{{.File}}</span></li>
			<li>Category: <span class="bold">{{.Category}}</span></li>
		</ul>
		<p>The previous file content was restored.</p>

		<pre>
{{.Error}}
		</pre>
	</body>
</html>
`
