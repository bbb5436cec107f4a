// Package brandtest provides brand fixtures shared by tests across packages.
package brandtest

import "github.com/agbru/brandgen/internal/brand"

// pngSignature is the 8-byte PNG file header.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Identity returns a complete five-color identity.
func Identity() brand.Identity {
	return brand.Identity{
		Colors: []brand.Color{
			{Name: "Crust Brown", Hex: "#8B5A2B", Usage: "Primary brand color"},
			{Name: "Flour White", Hex: "#FAF7F0", Usage: "Backgrounds"},
			{Name: "Berry Red", Hex: "#C0392B", Usage: "Calls-to-action"},
			{Name: "Oven Gold", Hex: "#F4B942", Usage: "Highlights"},
			{Name: "Charcoal", Hex: "#333333", Usage: "Body text"},
		},
		Fonts: brand.FontPair{
			Header: brand.Font{Name: "Poppins", ImportURL: "https://fonts.googleapis.com/css2?family=Poppins:wght@600"},
			Body:   brand.Font{Name: "Open Sans", ImportURL: "https://fonts.googleapis.com/css2?family=Open+Sans"},
		},
	}
}

// PNG returns a payload that sniffs as image/png, tagged with b so that
// payloads can be told apart.
func PNG(b byte) []byte {
	img := append([]byte{}, pngSignature...)
	return append(img, 0, 0, 0, 13, 'I', 'H', 'D', 'R', b)
}

// Images returns n distinct PNG payloads.
func Images(n int) brand.Images {
	images := make(brand.Images, n)
	for i := range images {
		images[i] = PNG(byte(i))
	}
	return images
}
