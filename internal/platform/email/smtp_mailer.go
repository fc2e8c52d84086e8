package email

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"github.com/ferdiebergado/userkit/internal/config"
)

var _ Mailer = &SMTPMailer{}

type templateMap map[string]*template.Template

// SMTPMailer delivers email over SMTP with a fixed sender address taken from
// config. Sends are synchronous; a transport failure surfaces to the caller.
type SMTPMailer struct {
	from      string
	pass      string
	host      string
	port      int
	sender    string
	layout    string
	templates templateMap
}

func (e *SMTPMailer) send(to []string, subject, body, contentType string) error {
	auth := smtp.PlainAuth("", e.from, e.pass, e.host)

	recipients := strings.Join(to, ", ")
	headers := "From: " + e.sender + "\r\n" +
		"To: " + recipients + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0\r\n" +
		"Content-Type: " + contentType + "; charset=\"UTF-8\"\r\n\r\n"

	message := headers + body
	addr := fmt.Sprintf("%s:%d", e.host, e.port)

	if err := smtp.SendMail(addr, auth, e.from, to, []byte(message)); err != nil {
		return fmt.Errorf("sending email from %q to %q: %w", e.from, to, err)
	}

	slog.Info("Email sent.")
	return nil
}

func (e *SMTPMailer) SendHTML(to []string, subject, tmplName string, data map[string]string) error {
	tmpl, ok := e.templates[tmplName]
	if !ok {
		return fmt.Errorf("template does not exist: %s", tmplName)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, e.layout, data); err != nil {
		return fmt.Errorf("execute email template for subject %q: %w", subject, err)
	}

	if err := e.send(to, subject, buf.String(), "text/html"); err != nil {
		return fmt.Errorf("sending email to %q with subject %q: %w", to, subject, err)
	}

	return nil
}

func (e *SMTPMailer) SendPlain(to []string, subject, body string) error {
	return e.send(to, subject, body, "text/plain")
}

func NewSMTPMailer(cfg *SMTPConfig, opts *config.Email) (*SMTPMailer, error) {
	path := opts.Templates
	layoutFile := filepath.Join(path, opts.Layout)
	tmplMap, err := parsePages(path, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse pages at path %q and layout file %q: %w", path, layoutFile, err)
	}

	return &SMTPMailer{
		from:      cfg.User,
		pass:      cfg.Password,
		host:      cfg.Host,
		port:      cfg.Port,
		sender:    opts.Sender,
		layout:    opts.Layout,
		templates: tmplMap,
	}, nil
}

func parsePages(templateDir, layoutFile string) (templateMap, error) {
	tmplMap := make(templateMap)
	layoutTmpl := template.Must(template.New("layout").ParseFiles(layoutFile))
	err := fs.WalkDir(os.DirFS(templateDir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk directory %q at path %q: %w", templateDir, path, err)
		}

		const suffix = ".html"
		if !d.IsDir() && strings.HasSuffix(path, suffix) && path != filepath.Base(layoutFile) {
			name := strings.TrimSuffix(path, suffix)
			tmplMap[name] = template.Must(template.Must(layoutTmpl.Clone()).ParseFiles(filepath.Join(templateDir, path)))
			slog.Debug("parsed page", "path", path, "name", name)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("load page templates: %w", err)
	}

	return tmplMap, nil
}
