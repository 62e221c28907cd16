// Package notification turns request lifecycle events into inbox entries.
// Message wording lives in a YAML template file so operators can adjust it
// without a rebuild; the embedded copy is the fallback.
package notification

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Notification types, matching the read-model enum.
const (
	TypeRequestSubmitted   = "REQUEST_SUBMITTED"
	TypeRequestApproved    = "REQUEST_APPROVED"
	TypeRequestRejected    = "REQUEST_REJECTED"
	TypeVMReady            = "VM_READY"
	TypeProvisioningFailed = "PROVISIONING_FAILED"
)

//go:embed templates.yaml
var defaultTemplates []byte

// TemplateData is what a message template may reference.
type TemplateData struct {
	VMName      string
	ProjectName string
	Requester   string
	Decider     string
	Reason      string
	IPAddress   string
	Size        string
}

type templateSpec struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
}

// Templates renders notification titles and bodies per type.
type Templates struct {
	byType map[string]compiledTemplate
}

type compiledTemplate struct {
	title   *template.Template
	message *template.Template
}

// LoadTemplates parses the embedded template set, overridden by the file at
// path when it is non-empty.
func LoadTemplates(path string) (*Templates, error) {
	raw := defaultTemplates
	if path != "" {
		fileRaw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read notification templates %s: %w", path, err)
		}
		raw = fileRaw
	}

	var specs map[string]templateSpec
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("parse notification templates: %w", err)
	}

	t := &Templates{byType: make(map[string]compiledTemplate, len(specs))}
	for name, spec := range specs {
		title, err := template.New(name + ".title").Parse(spec.Title)
		if err != nil {
			return nil, fmt.Errorf("template %s title: %w", name, err)
		}
		message, err := template.New(name + ".message").Parse(spec.Message)
		if err != nil {
			return nil, fmt.Errorf("template %s message: %w", name, err)
		}
		t.byType[name] = compiledTemplate{title: title, message: message}
	}
	return t, nil
}

// Render produces (title, message) for a notification type.
func (t *Templates) Render(notifType string, data TemplateData) (string, string, error) {
	compiled, ok := t.byType[notifType]
	if !ok {
		return "", "", fmt.Errorf("no template for notification type %s", notifType)
	}
	var title, message strings.Builder
	if err := compiled.title.Execute(&title, data); err != nil {
		return "", "", fmt.Errorf("render %s title: %w", notifType, err)
	}
	if err := compiled.message.Execute(&message, data); err != nil {
		return "", "", fmt.Errorf("render %s message: %w", notifType, err)
	}
	return strings.TrimSpace(title.String()), strings.TrimSpace(message.String()), nil
}
