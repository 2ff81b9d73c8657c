// Package output renders the final markdown document and writes it to disk.
package output

import (
	"strings"

	"github.com/inful/mdfp"
)

// Document is the assembled token reference ready to be written.
type Document struct {
	Title string
	Body  string
	// Frontmatter prepends a YAML header carrying the title and a content fingerprint.
	Frontmatter bool
}

// Render returns the document bytes. Identical input yields identical bytes.
func (d Document) Render() ([]byte, error) {
	if !d.Frontmatter {
		return []byte(d.Body), nil
	}
	fields := map[string]string{"title": d.Title}
	fp, err := Fingerprint(fields, d.Body)
	if err != nil {
		return nil, err
	}
	fields[mdfp.FingerprintField] = fp

	header, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.WriteString(delimiter)
	b.Write(header)
	b.WriteString(delimiter)
	b.WriteString(d.Body)
	return []byte(b.String()), nil
}

// Fingerprint computes the mdfp content fingerprint over fields (excluding any
// existing fingerprint) and body.
func Fingerprint(fields map[string]string, body string) (string, error) {
	hashed := make(map[string]string, len(fields))
	for k, v := range fields {
		if k == mdfp.FingerprintField {
			continue
		}
		hashed[k] = v
	}
	header := ""
	if len(hashed) > 0 {
		raw, err := encodeFields(hashed)
		if err != nil {
			return "", err
		}
		header = strings.TrimSuffix(string(raw), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(header, body), nil
}
