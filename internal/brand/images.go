package brand

import (
	"encoding/base64"
	"errors"

	"github.com/gabriel-vasile/mimetype"
)

// LogoCount is the number of square images requested per attempt: one
// primary logo and two secondary marks.
const LogoCount = 3

// defaultImageMIME is assumed when the payload cannot be sniffed.
const defaultImageMIME = "image/png"

// Images is the ordered sequence of raw image payloads produced by logo
// generation. Element 0 is the primary logo; the rest are secondary marks.
type Images [][]byte

// Primary returns the primary logo, or nil when there are no images.
func (im Images) Primary() []byte {
	if len(im) == 0 {
		return nil
	}
	return im[0]
}

// Secondary returns the secondary marks. The result is empty, never nil,
// when there are fewer than two images.
func (im Images) Secondary() [][]byte {
	if len(im) < 2 {
		return [][]byte{}
	}
	return im[1:]
}

// MIMEType sniffs the media type of an image payload.
func MIMEType(img []byte) string {
	if len(img) == 0 {
		return defaultImageMIME
	}
	mt := mimetype.Detect(img)
	if !mt.Is("image/png") && !mt.Is("image/jpeg") && !mt.Is("image/webp") && !mt.Is("image/gif") {
		return defaultImageMIME
	}
	return mt.String()
}

// Extension returns the file extension, including the dot, matching the
// payload's media type.
func Extension(img []byte) string {
	switch MIMEType(img) {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

// DataURI encodes an image payload as a base64 data URI.
func DataURI(img []byte) string {
	return "data:" + MIMEType(img) + ";base64," + base64.StdEncoding.EncodeToString(img)
}

// ErrNoImages is returned when logo generation yields an empty sequence.
var ErrNoImages = errors.New("no images were generated")
