package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/agbru/brandgen/internal/brand"
)

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type outputOptions struct {
	MIMEType string `json:"mimeType"`
}

type predictParameters struct {
	SampleCount   int           `json:"sampleCount"`
	AspectRatio   string        `json:"aspectRatio"`
	OutputOptions outputOptions `json:"outputOptions"`
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MIMEType           string `json:"mimeType"`
		// RAIFilteredReason is set instead of the bytes when an image was
		// withheld by the safety filter.
		RAIFilteredReason string `json:"raiFilteredReason"`
	} `json:"predictions"`
}

// GenerateLogos asks the image model for brand.LogoCount square PNG images
// for mission: a primary logo followed by secondary marks. Filtered
// predictions are skipped; a response with no usable image returns
// brand.ErrNoImages.
func (c *Client) GenerateLogos(ctx context.Context, mission string) (brand.Images, error) {
	prompt, err := renderPrompt(logoPromptTmpl, mission)
	if err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}

	req := predictRequest{
		Instances: []predictInstance{{Prompt: prompt}},
		Parameters: predictParameters{
			SampleCount:   brand.LogoCount,
			AspectRatio:   "1:1",
			OutputOptions: outputOptions{MIMEType: "image/png"},
		},
	}

	var resp predictResponse
	if err := c.post(ctx, c.imageModel, "predict", req, &resp); err != nil {
		return nil, err
	}

	images := make(brand.Images, 0, len(resp.Predictions))
	for i, p := range resp.Predictions {
		if p.BytesBase64Encoded == "" {
			continue
		}
		img, err := base64.StdEncoding.DecodeString(p.BytesBase64Encoded)
		if err != nil {
			return nil, fmt.Errorf("decoding image %d: %w", i, err)
		}
		images = append(images, img)
	}
	if len(images) == 0 {
		return nil, brand.ErrNoImages
	}
	return images, nil
}
