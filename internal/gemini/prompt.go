package gemini

import (
	"bytes"
	"text/template"
)

var identityPromptTmpl = template.Must(template.New("identity").Parse(
	`Based on the following company mission, generate a complete brand identity. Mission: "{{.Mission}}"`))

var logoPromptTmpl = template.Must(template.New("logos").Parse(
	`A clean, modern, minimalist primary logo and two secondary brand marks/icons for a company with the mission: "{{.Mission}}". ` +
		`The logo and marks should be on a solid, simple background and be visually consistent.`))

func renderPrompt(tmpl *template.Template, mission string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Mission string }{Mission: mission}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// schema is the subset of the OpenAPI schema object accepted as a response
// schema by the text model.
type schema struct {
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Properties  map[string]schema `json:"properties,omitempty"`
	Items       *schema           `json:"items,omitempty"`
	Required    []string          `json:"required,omitempty"`
}

func str(description string) schema {
	return schema{Type: "STRING", Description: description}
}

func fontSchema(nameDescription string) schema {
	return schema{
		Type: "OBJECT",
		Properties: map[string]schema{
			"name":      str(nameDescription),
			"importUrl": str("The full Google Fonts import URL for the font."),
		},
		Required: []string{"name", "importUrl"},
	}
}

// identitySchema constrains the identity response to the brand.Identity
// JSON shape.
var identitySchema = schema{
	Type: "OBJECT",
	Properties: map[string]schema{
		"colors": {
			Type:        "ARRAY",
			Description: "A vibrant 5-color palette. Include primary, secondary, accent, and neutral colors.",
			Items: &schema{
				Type: "OBJECT",
				Properties: map[string]schema{
					"name":  str(`e.g., "Primary Blue", "Muted Gray"`),
					"hex":   str(`The hex code, e.g., "#FFFFFF"`),
					"usage": str(`Brief usage note, e.g., "For main calls-to-action"`),
				},
				Required: []string{"name", "hex", "usage"},
			},
		},
		"fonts": {
			Type: "OBJECT",
			Description: "A pair of Google Fonts that complement each other, with a clean, modern, and friendly " +
				"aesthetic similar to Google's typography (e.g., Roboto, Open Sans).",
			Properties: map[string]schema{
				"header": fontSchema("The header font name. Should be a clean, modern Google Font."),
				"body":   fontSchema("The body font name. Should be a highly readable Google Font that pairs well with the header font."),
			},
			Required: []string{"header", "body"},
		},
	},
	Required: []string{"colors", "fonts"},
}
