package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mailtpl "github.com/oksasatya/devconnector-api/pkg/mailer/templates"
)

// Sender delivers one rendered message.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// ErrPermanent marks a job that will never succeed and must not be requeued.
var ErrPermanent = errors.New("mailer: permanent failure")

// Deliver decodes a queued EmailJob, renders its template if set and sends it.
// Failures wrapping ErrPermanent should be dropped; anything else may be retried.
func Deliver(ctx context.Context, s Sender, body []byte) error {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("%w: decode job: %v", ErrPermanent, err)
	}
	job.To = strings.TrimSpace(job.To)
	if job.To == "" {
		return fmt.Errorf("%w: job has no recipient", ErrPermanent)
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: render %s: %v", ErrPermanent, job.Template, err)
		}
	}
	if subject == "" {
		return fmt.Errorf("%w: job has no subject", ErrPermanent)
	}
	return s.Send(ctx, job.To, subject, text, html)
}
