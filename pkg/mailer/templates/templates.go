package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

//go:embed *.tmpl
var FS embed.FS

// Render renders the named template with data and returns subject, text
// and html bodies. Only the registration confirmation is defined; unknown
// names are an error so the worker can dead-letter the job.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "registration_confirmation":
		return renderRegistrationConfirmation(data)
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}

const registrationConfirmationText = `Beste {{or .Name "relatie"}},

Bedankt voor uw registratie. Wij hebben uw gegevens goed ontvangen.

Met vriendelijke groet,
Stadsloket
`

func renderRegistrationConfirmation(data map[string]any) (string, string, string, error) {
	subject := "Bevestiging van uw registratie"

	tt, err := texttpl.New("text").Parse(registrationConfirmationText)
	if err != nil {
		return "", "", "", err
	}
	var textBuf bytes.Buffer
	if err := tt.Execute(&textBuf, data); err != nil {
		return "", "", "", err
	}

	ht, err := htmpl.ParseFS(FS, "registration_confirmation.tmpl")
	if err != nil {
		return "", "", "", err
	}
	var htmlBuf bytes.Buffer
	if err := ht.Execute(&htmlBuf, data); err != nil {
		return "", "", "", err
	}

	return subject, textBuf.String(), htmlBuf.String(), nil
}
