// Package brand defines the domain model of a generated brand package: the
// mission statement that drives generation, the identity (color palette and
// font pair) and the logo images.
package brand
