// Package gemini is the client for the remote generative service. It
// implements the two remote operations of a generation attempt: the identity
// call, which asks a text model for a color palette and font pair constrained
// by a JSON response schema, and the logo call, which asks an image model for
// three square PNG images.
//
// The Client satisfies orchestration.IdentityGenerator and
// orchestration.LogoGenerator. It makes exactly one request per call; failed
// generations are not retried.
package gemini
