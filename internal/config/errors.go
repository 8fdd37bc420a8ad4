package config

import "errors"

var (
	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("config: unknown preset")

	// ErrUnknownTheme indicates a theme name the renderer does not provide.
	ErrUnknownTheme = errors.New("config: unknown theme")
)
