package template

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/deckgen/deckgen/pkg/errors"
	"github.com/deckgen/deckgen/pkg/logging"
	"github.com/deckgen/deckgen/pkg/types"
)

// Source encodings a template can carry.
const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift-jis"
)

// Template is an input deck template. It is immutable once loaded; rendering
// always works on copies of Text.
type Template struct {
	// Name is the file name the template was loaded from.
	Name string
	// Text is the decoded template content.
	Text string
	// Encoding is the detected source encoding, used again when writing
	// rendered output.
	Encoding string
}

// Load reads a template file. Bytes that are not valid UTF-8 are decoded as
// Shift-JIS with lossy replacement, matching the deck files produced by
// Windows pre/post-processors.
func Load(fsys types.FS, path string) (*Template, error) {
	log := logging.GetLogger("template")
	log.Debug().Str("path", path).Msg("Loading template")

	raw, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateRead, "failed to read template %s", path)
	}

	text, enc, err := decode(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateDecode, "failed to decode template %s", path)
	}
	if enc != EncodingUTF8 {
		log.Debug().Str("path", path).Str("encoding", enc).Msg("Template is not UTF-8, decoded with fallback encoding")
	}

	return &Template{
		Name:     filepath.Base(path),
		Text:     text,
		Encoding: enc,
	}, nil
}

// Stem returns the template file name without its extension, used as the
// base for combination-mode output names.
func (t *Template) Stem() string {
	return strings.TrimSuffix(t.Name, filepath.Ext(t.Name))
}

// Encode converts rendered text back to the template's source encoding.
// Runes that have no Shift-JIS representation are replaced rather than
// failing the write.
func (t *Template) Encode(text string) ([]byte, error) {
	if t.Encoding != EncodingShiftJIS {
		return []byte(text), nil
	}
	enc := encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder())
	out, _, err := transform.Bytes(enc, []byte(text))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateDecode, "failed to encode text as shift-jis")
	}
	return out, nil
}

func decode(raw []byte) (string, string, error) {
	if utf8.Valid(raw) {
		return string(raw), EncodingUTF8, nil
	}
	// The Shift-JIS decoder substitutes U+FFFD for undecodable bytes
	// instead of failing, which is the lossy behavior we want.
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	if err != nil {
		return "", "", err
	}
	return string(decoded), EncodingShiftJIS, nil
}
