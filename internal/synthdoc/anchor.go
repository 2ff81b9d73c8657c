package synthdoc

import "strings"

// Anchor derives the in-page fragment of the long synth section that an inverse
// or index synth links to. The leading word of the display name is dropped, the
// remainder lower-cased and suffixed with the long synth symbol, all hyphen-joined.
//
// The result must equal the heading ID a markdown renderer assigns to
// "## <name> (s<asset>)"; the verify_anchors build stage checks this.
func Anchor(displayName, asset string) string {
	words := strings.Split(displayName, " ")
	if len(words) > 0 {
		words = words[1:]
	}
	words = append(words, "s"+asset)
	return strings.ToLower(strings.Join(words, "-"))
}

// LongSymbol is the symbol of the synth tracking asset directly.
func LongSymbol(asset string) string {
	return "s" + asset
}
