package markdown

// Options controls how Markdown is parsed for internal analysis.
type Options struct {
	// Tables enables GitHub-flavoured table parsing.
	Tables bool
}

type LinkKind string

const (
	LinkKindInline   LinkKind = "inline"
	LinkKindImage    LinkKind = "image"
	LinkKindAuto     LinkKind = "auto"
	LinkKindFragment LinkKind = "fragment"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// Fragment returns the in-page anchor of a fragment link, without the leading '#'.
func (l Link) Fragment() string {
	if l.Kind != LinkKindFragment || len(l.Destination) == 0 {
		return ""
	}
	return l.Destination[1:]
}
