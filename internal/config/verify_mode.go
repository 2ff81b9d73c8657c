package config

import "strings"

// VerifyMode controls how unresolved in-document anchors are treated.
type VerifyMode string

const (
	VerifyOff   VerifyMode = "off"
	VerifyWarn  VerifyMode = "warn"
	VerifyError VerifyMode = "error"
)

// NormalizeVerifyMode canonicalizes user input; unknown values return "".
func NormalizeVerifyMode(raw string) VerifyMode {
	switch VerifyMode(strings.ToLower(strings.TrimSpace(raw))) {
	case VerifyOff:
		return VerifyOff
	case VerifyWarn:
		return VerifyWarn
	case VerifyError:
		return VerifyError
	default:
		return ""
	}
}
