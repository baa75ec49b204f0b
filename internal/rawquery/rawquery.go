// Package rawquery extracts tag values from RAW instruction lines. A
// line is a flat run of tagged fields; wrapped in a synthetic root it
// is well-formed XML, so tag access becomes an XPath query.
package rawquery

import (
	"fmt"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// Extract returns the value of tag in each line, in line order. Lines
// without the tag yield an empty string, so the result always has one
// entry per line.
//
// RAW values are written unescaped, so a line whose values contain
// markup characters is not well-formed; Extract reports it as an
// error naming the line rather than guessing at its structure.
func Extract(lines []string, tag string) ([]string, error) {
	path, err := xmlpath.Compile("/r/" + tag)
	if err != nil {
		return nil, fmt.Errorf("invalid tag %q: %w", tag, err)
	}

	values := make([]string, len(lines))
	for i, line := range lines {
		root, err := xmlpath.Parse(strings.NewReader("<r>" + line + "</r>"))
		if err != nil {
			return nil, fmt.Errorf("line %d is not a well-formed instruction: %w", i+1, err)
		}
		if value, ok := path.String(root); ok {
			values[i] = value
		}
	}
	return values, nil
}
