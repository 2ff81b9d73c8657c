package output

import (
	"bytes"
	"errors"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---\n"

// ErrNoFrontmatter is returned by SplitFrontmatter when the document has none.
var ErrNoFrontmatter = errors.New("document has no yaml frontmatter")

// encodeFields serializes string fields as YAML with sorted keys, so the same
// fields always produce the same bytes.
func encodeFields(fields map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fields[k]},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SplitFrontmatter separates a `---` delimited YAML header from the body and decodes it.
func SplitFrontmatter(doc []byte) (map[string]string, []byte, error) {
	if !bytes.HasPrefix(doc, []byte(delimiter)) {
		return nil, doc, ErrNoFrontmatter
	}
	rest := doc[len(delimiter):]
	end := bytes.Index(rest, []byte("\n"+delimiter))
	if end < 0 {
		return nil, nil, errors.New("yaml frontmatter closing delimiter is missing")
	}
	header := rest[:end+1]
	body := rest[end+1+len(delimiter):]

	fields := map[string]string{}
	if len(strings.TrimSpace(string(header))) > 0 {
		if err := yaml.Unmarshal(header, &fields); err != nil {
			return nil, nil, err
		}
	}
	return fields, body, nil
}
