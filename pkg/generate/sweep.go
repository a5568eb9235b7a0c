package generate

import (
	stderrors "errors"

	"github.com/deckgen/deckgen/pkg/config"
	"github.com/deckgen/deckgen/pkg/emitter"
	"github.com/deckgen/deckgen/pkg/errors"
	"github.com/deckgen/deckgen/pkg/filesystem"
	"github.com/deckgen/deckgen/pkg/logging"
	"github.com/deckgen/deckgen/pkg/sweep"
	"github.com/deckgen/deckgen/pkg/template"
	"github.com/deckgen/deckgen/pkg/types"
)

// SweepOptions defines the options for the Sweep command.
type SweepOptions struct {
	// TemplatePath is the path to the input deck template.
	TemplatePath string
	// ParamsPath is the path to the CSV parameter sweep table.
	ParamsPath string
	// JobsDir overrides the configured output directory when non-empty.
	JobsDir string
	// Config is the resolved configuration (optional, defaults apply).
	Config *config.Config
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// SweepResult reports what a sweep run produced.
type SweepResult struct {
	Template *template.Template
	JobsDir  string
	Written  []string
}

// Sweep generates one job file per parameter table row. The first failing
// row aborts the run; files already written stay on disk.
func Sweep(opts SweepOptions) (*SweepResult, error) {
	log := logging.GetLogger("generate")
	log.Debug().Str("command", "Sweep").Str("template", opts.TemplatePath).Msg("Executing command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	jobsDir := opts.JobsDir
	if jobsDir == "" {
		jobsDir = cfg.Output.Dir
	}

	tmpl, err := template.Load(fsys, opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	rows, err := sweep.ReadTable(fsys, opts.ParamsPath)
	if err != nil {
		return nil, err
	}

	namer := sweep.NewNamer(cfg.Naming)
	em := emitter.New(fsys, jobsDir, cfg.Output.Extension)

	result := &SweepResult{Template: tmpl, JobsDir: jobsDir}
	for index, row := range rows {
		jobName := namer.JobName(row, index)
		log.Info().Str("job", jobName).Msg("Rendering template")

		rendered, err := template.RenderTokens(tmpl.Text, row)
		if err != nil {
			var deckErr *errors.DeckError
			if stderrors.As(err, &deckErr) {
				deckErr.WithDetail("job", jobName)
			}
			return result, err
		}

		path, err := em.WriteJob(jobName, rendered, tmpl)
		if err != nil {
			return result, err
		}
		result.Written = append(result.Written, path)
	}

	log.Info().Int("count", len(result.Written)).Str("dir", jobsDir).Msg("Generated job files")
	return result, nil
}
