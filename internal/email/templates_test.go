package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_RenderWelcome(t *testing.T) {
	tm := NewTemplateManager()

	subject, body, err := tm.Render(WelcomeTemplate, TemplateData{
		"Name":   "Priya Sharma",
		"Region": "Bangalore",
	})

	require.NoError(t, err)
	assert.Equal(t, "AstraZeneca Clinical Trials - Thank You for Your Interest", subject)
	assert.Contains(t, body, "Dear Priya Sharma,")
	assert.Contains(t, body, "suitable clinical trials in Bangalore")
	assert.Contains(t, body, "1-800-TRIALS-1")
}

func TestTemplateManager_RenderEscapesHTML(t *testing.T) {
	tm := NewTemplateManager()

	_, body, err := tm.Render(WelcomeTemplate, TemplateData{
		"Name":   "<script>alert(1)</script>",
		"Region": "Pune",
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, _, err := tm.Render("reminder", TemplateData{})
	assert.Error(t, err)
}

func TestTemplateManager_AddTemplate(t *testing.T) {
	tm := NewTemplateManager()

	err := tm.AddTemplate("followup", "Next steps", "<p>Hello {{.Name}}</p>")
	require.NoError(t, err)

	subject, body, err := tm.Render("followup", TemplateData{"Name": "Arjun"})
	require.NoError(t, err)
	assert.Equal(t, "Next steps", subject)
	assert.Contains(t, body, "Hello Arjun")

	assert.Contains(t, tm.TemplateNames(), "followup")
	assert.Contains(t, tm.TemplateNames(), WelcomeTemplate)
}

func TestSMTPProvider_Validate(t *testing.T) {
	provider := NewSMTPProvider(&SMTPConfig{Host: "", Port: 587}, nil)
	assert.Error(t, provider.Validate())

	provider = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 0}, nil)
	assert.Error(t, provider.Validate())

	provider = NewSMTPProvider(DefaultConfig(), nil)
	assert.NoError(t, provider.Validate())
}
