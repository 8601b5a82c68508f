// Package templates renders the transactional emails sent by the email worker.
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

var subjects = map[string]string{
	"welcome": "Welcome to {{.AppName}}",
}

// Render returns subject, text and html bodies for the named template.
func Render(name string, data map[string]any) (string, string, string, error) {
	subjectSrc, ok := subjects[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
	subject, err := renderText("subject", subjectSrc, data)
	if err != nil {
		return "", "", "", err
	}

	txtSrc, err := FS.ReadFile(name + ".txt.tmpl")
	if err != nil {
		return "", "", "", err
	}
	text, err := renderText(name, string(txtSrc), data)
	if err != nil {
		return "", "", "", err
	}

	h, err := htmpl.ParseFS(FS, name+".html.tmpl")
	if err != nil {
		return "", "", "", err
	}
	var buf bytes.Buffer
	if err := h.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	return subject, text, buf.String(), nil
}

func renderText(name, src string, data map[string]any) (string, error) {
	t, err := texttpl.New(name).Option("missingkey=zero").Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
