package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeySymbol     = "symbol"
	KeyAsset      = "asset"
	KeyVariant    = "variant"
	KeyNetwork    = "network"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Symbol(s string) slog.Attr       { return slog.String(KeySymbol, s) }
func Asset(a string) slog.Attr        { return slog.String(KeyAsset, a) }
func Variant(v string) slog.Attr      { return slog.String(KeyVariant, v) }
func Network(n string) slog.Attr      { return slog.String(KeyNetwork, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
