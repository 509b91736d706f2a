package dictionary

import (
	"fmt"
	"strings"
)

// =========================
// Segmentation
// =========================

const (
	lfSeparator   = "\n\n"
	crlfSeparator = "\r\n\r\n"
)

// byteOrderMarks are stripped from the front of the text. The last three are
// the UTF-8 BOM bytes after they have been mis-decoded as Latin-1.
const byteOrderMarks = "\ufeff\u00ef\u00bb\u00bf"

// Block is one blank-line separated chunk of the definition text.
type Block struct {
	Index int
	Text  string
}

// Separator reports which block separator is used for text. A single CRLF
// blank line anywhere switches the whole document to CRLF splitting.
func Separator(text string) string {
	if strings.Contains(text, crlfSeparator) {
		return crlfSeparator
	}
	return lfSeparator
}

// Segment splits text into ordered blocks. Empty blocks are kept so that the
// decoder can reject them.
func Segment(text string) []Block {
	text = strings.TrimLeft(text, byteOrderMarks)
	parts := strings.Split(text, Separator(text))
	blocks := make([]Block, len(parts))
	for i, p := range parts {
		blocks[i] = Block{Index: i, Text: p}
	}
	return blocks
}

// =========================
// Block Decoding
// =========================

// Section is a decoded block: its bracketed header and its attributes.
type Section struct {
	Name       string
	Attributes *Attributes
}

type blockDecoder struct {
	block   Block
	lineNo  int
	section *Section
	lastKey string
	// index into the last key's value list that continuation lines extend
	lastIdx int
	// set once a second, different header is seen; the rest of the block
	// belongs to that section and is not read
	skipping bool
}

// DecodeBlock parses one block into a Section. Keys are case sensitive and
// repeated keys accumulate. The block must carry a [Header] before any
// key/value line.
func DecodeBlock(b Block) (*Section, error) {
	d := &blockDecoder{block: b, lastIdx: -1}
	for _, raw := range strings.Split(b.Text, "\n") {
		d.lineNo++
		line := strings.TrimRight(raw, "\r")
		if err := d.decodeLine(line); err != nil {
			return nil, err
		}
	}
	if d.section == nil {
		return nil, d.errf("no section header")
	}
	return d.section, nil
}

func (d *blockDecoder) decodeLine(line string) error {
	if d.skipping {
		return nil
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		d.lastKey = ""
		return nil
	}
	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
		return nil
	}

	// indented lines continue the previous value
	if d.lastKey != "" && isIndented(line) {
		vs := d.section.Attributes.values[d.lastKey]
		vs[d.lastIdx] = vs[d.lastIdx] + "\n" + trimmed
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		end := strings.LastIndex(trimmed, "]")
		if end > 1 {
			name := trimmed[1:end]
			// non-strict: a repeated header keeps filling the same section
			if d.section == nil {
				d.section = &Section{Name: name, Attributes: NewAttributes()}
			} else if d.section.Name != name {
				d.skipping = true
			}
			d.lastKey = ""
			return nil
		}
	}

	if d.section == nil {
		return d.errf("attribute line before section header")
	}

	key, value := splitKeyValue(trimmed)
	d.section.Attributes.Append(key, value)
	d.lastKey = key
	d.lastIdx = len(d.section.Attributes.values[key]) - 1
	return nil
}

func (d *blockDecoder) errf(msg string) error {
	return &ParseError{
		Kind:  ErrSegmentation,
		Block: d.block.Index,
		Err:   fmt.Errorf("line %d: %s", d.lineNo, msg),
	}
}

// splitKeyValue splits on the first '=' or ':'. A line without a delimiter is
// a key with an empty value.
func splitKeyValue(s string) (string, string) {
	idx := strings.IndexAny(s, "=:")
	if idx < 0 {
		return s, ""
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:])
}

func isIndented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}
