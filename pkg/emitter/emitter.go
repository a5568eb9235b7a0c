package emitter

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/deckgen/deckgen/pkg/combine"
	"github.com/deckgen/deckgen/pkg/errors"
	"github.com/deckgen/deckgen/pkg/logging"
	"github.com/deckgen/deckgen/pkg/template"
	"github.com/deckgen/deckgen/pkg/types"
)

// Emitter writes rendered job files into the output directory.
type Emitter struct {
	fs  types.FS
	dir string
	ext string
	log zerolog.Logger
}

// New creates an emitter writing files with the given extension into dir.
func New(fsys types.FS, dir, ext string) *Emitter {
	return &Emitter{
		fs:  fsys,
		dir: dir,
		ext: ext,
		log: logging.GetLogger("emitter"),
	}
}

// Dir returns the output directory.
func (e *Emitter) Dir() string {
	return e.dir
}

// WriteJob writes one rendered deck under the job name, creating the output
// directory if needed, and returns the written path. The content is encoded
// in the template's source encoding before the single write.
func (e *Emitter) WriteJob(jobName, contents string, tmpl *template.Template) (string, error) {
	if err := e.fs.MkdirAll(e.dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory %s", e.dir)
	}

	data, err := tmpl.Encode(contents)
	if err != nil {
		return "", err
	}

	destination := filepath.Join(e.dir, jobName+e.ext)
	if err := e.fs.WriteFile(destination, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write job file %s", destination)
	}
	e.log.Debug().Str("path", destination).Msg("Wrote job file")
	return destination, nil
}

// CombinationResult reports what EmitCombinations produced.
type CombinationResult struct {
	// Written holds the paths of generated files, in combination order.
	Written []string
	// Skipped holds the labels of combinations where at least one target
	// had zero matches. No file is written for those.
	Skipped []string
}

// EmitCombinations renders and writes one file per combination, named
// "{stem}_({label}){ext}". A combination where any replacement matched
// nothing is skipped entirely; the run continues with the rest.
func (e *Emitter) EmitCombinations(tmpl *template.Template, combos []combine.Combination, mode template.MatchMode) (*CombinationResult, error) {
	result := &CombinationResult{}

	for _, combo := range combos {
		updated, counts := template.Apply(tmpl.Text, combo.Replacements(), mode)
		if hasZero(counts) {
			e.log.Warn().Str("combination", combo.Label).Msg("Target not found in template, skipping combination")
			result.Skipped = append(result.Skipped, combo.Label)
			continue
		}

		name := fmt.Sprintf("%s_(%s)", tmpl.Stem(), combo.Label)
		path, err := e.WriteJob(name, updated, tmpl)
		if err != nil {
			return result, err
		}
		result.Written = append(result.Written, path)
	}

	return result, nil
}

func hasZero(counts []int) bool {
	for _, count := range counts {
		if count == 0 {
			return true
		}
	}
	return false
}
