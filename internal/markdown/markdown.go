package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Outline is the analysed structure of a markdown document.
type Outline struct {
	// HeadingIDs are the auto-generated heading anchors, in document order.
	HeadingIDs []string
	Links      []Link
}

func newMarkdown(opts Options) goldmark.Markdown {
	gmOpts := []goldmark.Option{goldmark.WithParserOptions(parser.WithAutoHeadingID())}
	if opts.Tables {
		gmOpts = append(gmOpts, goldmark.WithExtensions(extension.Table))
	}
	return goldmark.New(gmOpts...)
}

// Analyze parses body and collects heading IDs and links.
//
// Heading IDs are generated the way goldmark does for rendered output, so
// they match the anchors a reader's browser will navigate to.
func Analyze(body []byte, opts Options) Outline {
	root := newMarkdown(opts).Parser().Parse(text.NewReader(body))

	var out Outline
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Heading:
			if id, ok := node.AttributeString("id"); ok {
				if b, ok := id.([]byte); ok {
					out.HeadingIDs = append(out.HeadingIDs, string(b))
				}
			}
		case *gmast.AutoLink:
			out.Links = append(out.Links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			out.Links = append(out.Links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			dest := string(node.Destination)
			kind := LinkKindInline
			if strings.HasPrefix(dest, "#") {
				kind = LinkKindFragment
			}
			out.Links = append(out.Links, Link{Kind: kind, Destination: dest})
		}
		return gmast.WalkContinue, nil
	})
	return out
}

// ExtractLinks parses a Markdown body and extracts link-like constructs.
func ExtractLinks(body []byte, opts Options) []Link {
	return Analyze(body, opts).Links
}
