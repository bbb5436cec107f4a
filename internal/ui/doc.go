// Package ui provides theme and color support for the application's user interface.
// It defines color schemes, ANSI escape code helpers, and the palette swatches
// shared by the CLI and the interactive mode.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui
