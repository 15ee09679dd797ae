package utils

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped stdout logger tagged with the owning component.
func NewLogger(component string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger()
}
