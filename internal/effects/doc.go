// Package effects performs the side effects that follow a generation
// attempt. The Dispatcher listens for successful attempts and requests the
// header and body fonts of the new identity when an interactive surface is
// attached, and copies user-selected values to the clipboard on a
// best-effort basis. Fonts are requested through a FontLoader that ignores
// repeated requests for the same stylesheet URL.
package effects
