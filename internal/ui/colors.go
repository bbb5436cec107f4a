package ui

// ColorPrimary returns the escape code of the active theme's accent.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the escape code for labels.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the escape code for success output.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the escape code for error output.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the escape code for informational output.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the escape code that clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
