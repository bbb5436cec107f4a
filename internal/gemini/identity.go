package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/agbru/brandgen/internal/brand"
)

// ErrUnparseableIdentity is returned when the identity response text is not
// the requested JSON document.
var ErrUnparseableIdentity = errors.New("failed to parse brand identity from AI response")

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
	ResponseSchema   schema `json:"responseSchema"`
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

// text concatenates the text parts of the first candidate.
func (r generateContentResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}

// GenerateIdentity asks the text model for a palette and font pair for
// mission. A response without colors or fonts wraps brand.ErrInvalidIdentity.
func (c *Client) GenerateIdentity(ctx context.Context, mission string) (brand.Identity, error) {
	prompt, err := renderPrompt(identityPromptTmpl, mission)
	if err != nil {
		return brand.Identity{}, fmt.Errorf("rendering prompt: %w", err)
	}

	req := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   identitySchema,
		},
	}

	var resp generateContentResponse
	if err := c.post(ctx, c.identityModel, "generateContent", req, &resp); err != nil {
		return brand.Identity{}, err
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return brand.Identity{}, fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}

	return parseIdentity(resp.text())
}

func parseIdentity(text string) (brand.Identity, error) {
	if text == "" {
		return brand.Identity{}, fmt.Errorf("%w: empty response", ErrUnparseableIdentity)
	}
	// Some responses arrive fenced as a markdown code block.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var id brand.Identity
	if err := json.Unmarshal([]byte(text), &id); err != nil {
		return brand.Identity{}, fmt.Errorf("%w: %v", ErrUnparseableIdentity, err)
	}
	if len(id.Colors) == 0 || (id.Fonts.Header.IsZero() && id.Fonts.Body.IsZero()) {
		return brand.Identity{}, brand.ErrInvalidIdentity
	}
	return id, nil
}
