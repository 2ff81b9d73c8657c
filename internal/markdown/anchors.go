package markdown

// BrokenAnchor is an in-page link whose fragment matches no heading.
type BrokenAnchor struct {
	Fragment string
	// Occurrences counts how many links point at the fragment.
	Occurrences int
}

// VerifyAnchors reports fragment links in body that do not resolve to a heading ID.
// Results are in order of first occurrence.
func VerifyAnchors(body []byte, opts Options) []BrokenAnchor {
	outline := Analyze(body, opts)

	ids := make(map[string]struct{}, len(outline.HeadingIDs))
	for _, id := range outline.HeadingIDs {
		ids[id] = struct{}{}
	}

	var broken []BrokenAnchor
	index := make(map[string]int)
	for _, l := range outline.Links {
		frag := l.Fragment()
		if frag == "" {
			continue
		}
		if _, ok := ids[frag]; ok {
			continue
		}
		if i, seen := index[frag]; seen {
			broken[i].Occurrences++
			continue
		}
		index[frag] = len(broken)
		broken = append(broken, BrokenAnchor{Fragment: frag, Occurrences: 1})
	}
	return broken
}
