package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// WelcomeTemplate is the template sent to participants after an
// administrator selects their submissions for outreach.
const WelcomeTemplate = "welcome"

const welcomeSubject = "AstraZeneca Clinical Trials - Thank You for Your Interest"

const welcomeBody = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .header { background-color: #8A0051; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .highlight { color: #8A0051; font-weight: bold; }
        .footer { background-color: #f8f9fa; padding: 15px; text-align: center; font-size: 12px; }
        .button { background-color: #EFAB00; color: #8A0051; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block; margin: 10px 0; }
    </style>
</head>
<body>
    <div class="header">
        <h1>AstraZeneca Clinical Trials</h1>
    </div>

    <div class="content">
        <h2>Dear {{.Name}},</h2>

        <p>Thank you for your interest in participating in AstraZeneca clinical trials. We have received your registration and are reviewing your information.</p>

        <p>Based on your location in <span class="highlight">{{.Region}}</span>, we have identified several clinical trials that may be relevant to you:</p>

        <ul>
            <li><strong>Cardiovascular Health Study</strong> - Phase III trial for heart disease prevention</li>
            <li><strong>Respiratory Research Program</strong> - New treatments for asthma and COPD</li>
            <li><strong>Oncology Innovation Trial</strong> - Advanced cancer treatment research</li>
            <li><strong>Diabetes Management Study</strong> - Next-generation diabetes medications</li>
        </ul>

        <p>Our clinical research team will contact you within the next 5-7 business days to discuss potential opportunities that match your health profile.</p>

        <a href="https://astrazenecaclinicaltrials.com" class="button">Learn More About Our Trials</a>

        <h3>What's Next?</h3>
        <ol>
            <li>Our team will review your health information</li>
            <li>We'll match you with suitable clinical trials in {{.Region}}</li>
            <li>You'll receive a call to discuss participation options</li>
            <li>If interested, we'll schedule a screening appointment</li>
        </ol>

        <p>For more information about clinical trials, visit <a href="https://clinicaltrials.gov">clinicaltrials.gov</a> or our dedicated portal at <a href="https://astrazenecaclinicaltrials.com">astrazenecaclinicaltrials.com</a>.</p>

        <p>If you have any questions, please contact our Clinical Trials Information Center at <strong>1-800-TRIALS-1</strong>.</p>

        <p>Best regards,<br>
        <span class="highlight">AstraZeneca Clinical Research Team</span></p>
    </div>

    <div class="footer">
        <p>AstraZeneca Pharmaceuticals LP | This email is for informational purposes only</p>
        <p>For medical emergencies, please contact your healthcare provider immediately</p>
    </div>
</body>
</html>
`

type namedTemplate struct {
	subject string
	body    *template.Template
}

// TemplateManager implements TemplateRenderer with an in-memory
// template registry. The welcome template is preloaded.
type TemplateManager struct {
	templates map[string]namedTemplate
	mutex     sync.RWMutex
}

// NewTemplateManager creates a manager with the built-in templates.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]namedTemplate),
	}

	if err := tm.AddTemplate(WelcomeTemplate, welcomeSubject, welcomeBody); err != nil {
		panic(fmt.Sprintf("failed to load built-in email templates: %v", err))
	}

	return tm
}

// Render produces the subject and HTML body for the named template.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.body.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template: %w", err)
	}

	return tpl.subject, buf.String(), nil
}

// AddTemplate registers a template under the given name, replacing any
// existing one.
func (tm *TemplateManager) AddTemplate(name string, subject string, body string) error {
	tpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = namedTemplate{subject: subject, body: tpl}
	tm.mutex.Unlock()

	return nil
}

// TemplateNames lists the registered template names.
func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}
	return names
}
