package models

import (
	"time"
)

// Source identifies what produced a candidate date
type Source string

const (
	SourceEngine  Source = "engine"  // one of the phrase recognizers
	SourceNatural Source = "natural" // go-naturaldate fallback
)

// Candidate is one interpretation of a phrase as shown to the user
type Candidate struct {
	Date   time.Time `json:"date"`
	Match  string    `json:"match"`
	Input  string    `json:"string"`
	Source Source    `json:"source"`
}

// Log formats accepted in config
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the local host configuration stored in .due/config.json
type Config struct {
	EndOfDay        bool   `json:"end_of_day,omitempty"`
	NaturalFallback bool   `json:"natural_fallback,omitempty"`
	LogLevel        string `json:"log_level,omitempty"`  // "debug", "info", "warn" (default), "error"
	LogFormat       string `json:"log_format,omitempty"` // "text" (default) or "json"
}
