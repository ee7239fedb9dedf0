package contact

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/ikavisbode/v0-iia/internal/web/platform/errors"
)

const (
	// recipientAddress receives all contact form messages.
	recipientAddress = "contato@institutointernacional.com"
	// defaultSubject is used when the sender leaves the subject blank.
	defaultSubject = "Contato via site"
	// formKey identifies form submissions in the message body.
	formKey = "28cfab76-143a-47aa-bafb-0775e82d9880"
)

// Submission is a validated contact form submission.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate reports a missing required field as an error. All four fields
// are required.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Email) == "" ||
		strings.TrimSpace(s.Subject) == "" || strings.TrimSpace(s.Message) == "" {
		return errMissingFields
	}
	return nil
}

var errMissingFields = apperrors.EK(
	apperrors.KindInvalidInput, "contact.form.missing", "missing required contact fields")

// BuildMailto renders the submission as a mailto: URI addressed to the
// institute, with the form contents laid out in the body. The query is
// percent-encoded with %20 for spaces so every mail client decodes it the
// same way.
func BuildMailto(s Submission) string {
	subject := strings.TrimSpace(s.Subject)
	if subject == "" {
		subject = defaultSubject
	}

	body := fmt.Sprintf(
		"Formulário de Contato - Instituto Internacional de Atuação\n"+
			"Key: %s\n\n"+
			"Nome: %s\n"+
			"Email: %s\n"+
			"Assunto: %s\n\n"+
			"Mensagem:\n%s\n\n"+
			"---\n"+
			"Enviado através do site institucional",
		formKey,
		strings.TrimSpace(s.Name),
		strings.TrimSpace(s.Email),
		subject,
		strings.TrimSpace(s.Message),
	)

	return "mailto:" + recipientAddress +
		"?subject=" + encodeMailtoComponent(subject) +
		"&body=" + encodeMailtoComponent(body)
}

// encodeMailtoComponent percent-encodes a mailto query component. QueryEscape
// would emit "+" for spaces, which mail clients render literally, so the
// escaped string is rewritten to %20 form.
func encodeMailtoComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
