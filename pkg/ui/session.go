package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/deckgen/deckgen/pkg/combine"
	"github.com/deckgen/deckgen/pkg/config"
	"github.com/deckgen/deckgen/pkg/emitter"
	"github.com/deckgen/deckgen/pkg/logging"
	"github.com/deckgen/deckgen/pkg/template"
	"github.com/deckgen/deckgen/pkg/types"
)

// Session owns the mutable state of an interactive combine run: the ordered
// target list and the match mode. Prompts append to the structure; rendering
// always derives from it.
type Session struct {
	Targets []combine.Target
	Mode    template.MatchMode

	tmpl      *template.Template
	fs        types.FS
	cfg       *config.Config
	outputDir string
	log       zerolog.Logger
}

// NewSession creates an interactive session for the given template.
func NewSession(tmpl *template.Template, fsys types.FS, cfg *config.Config, outputDir string) *Session {
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}
	return &Session{
		tmpl:      tmpl,
		fs:        fsys,
		cfg:       cfg,
		outputDir: outputDir,
		log:       logging.GetLogger("ui"),
	}
}

// AddTarget appends a target with the next ordinal and returns it for
// candidate collection.
func (s *Session) AddTarget(text string) *combine.Target {
	s.Targets = append(s.Targets, combine.Target{
		Ordinal: len(s.Targets) + 1,
		Text:    text,
	})
	return &s.Targets[len(s.Targets)-1]
}

// Run drives the interactive flow: collect targets and candidates, pick the
// match mode, preview and select combinations, then generate files.
func (s *Session) Run() error {
	pterm.Println(HeaderStyle.Render(fmt.Sprintf("Template: %s (%s)", s.tmpl.Name, s.tmpl.Encoding)))

	if err := s.collectTargets(); err != nil {
		return err
	}
	if len(s.Targets) == 0 {
		pterm.Warning.Println("No targets entered, nothing to generate.")
		return nil
	}

	if err := s.selectMode(); err != nil {
		return err
	}

	combos := combine.Enumerate(s.Targets)
	if len(combos) == 0 {
		pterm.Warning.Println("Every target needs at least one replacement candidate.")
		return nil
	}

	s.previewCombinations(combos)
	selected, err := s.selectCombinations(combos)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		pterm.Warning.Println("No combinations selected, nothing to generate.")
		return nil
	}

	proceed, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show(fmt.Sprintf("Generate %d file(s) into %s?", len(selected), s.outputDir))
	if err != nil {
		return err
	}
	if !proceed {
		pterm.Info.Println("Aborted, no files written.")
		return nil
	}

	em := emitter.New(s.fs, s.outputDir, s.cfg.Output.Extension)
	result, err := em.EmitCombinations(s.tmpl, selected, s.Mode)
	if err != nil {
		return err
	}

	pterm.Success.Println(RenderSummary(result, s.outputDir))
	s.log.Info().
		Int("written", len(result.Written)).
		Strs("skipped", result.Skipped).
		Msg("Interactive generation finished")
	return nil
}

func (s *Session) collectTargets() error {
	pterm.Println(HeaderStyle.Render("Targets"))

	for {
		targetText, err := pterm.DefaultInteractiveTextInput.
			WithMultiLine().
			Show(fmt.Sprintf("Target text (%d)", len(s.Targets)+1))
		if err != nil {
			return err
		}
		targetText = strings.TrimSpace(targetText)
		if targetText == "" {
			pterm.Warning.Println("Empty target skipped.")
		} else {
			target := s.AddTarget(targetText)
			if err := s.collectCandidates(target); err != nil {
				return err
			}
			if len(target.Candidates) == 0 {
				pterm.Warning.Printfln("Target (%d) has no candidates and was removed.", target.Ordinal)
				s.Targets = s.Targets[:len(s.Targets)-1]
			}
		}

		more, err := pterm.DefaultInteractiveConfirm.Show("Add another target?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (s *Session) collectCandidates(target *combine.Target) error {
	for {
		candidateText, err := pterm.DefaultInteractiveTextInput.
			WithMultiLine().
			Show(fmt.Sprintf("Replacement candidate %d-%d", target.Ordinal, len(target.Candidates)+1))
		if err != nil {
			return err
		}
		candidateText = strings.TrimSpace(candidateText)
		if candidateText == "" {
			pterm.Warning.Println("Empty candidate skipped.")
		} else {
			target.AddCandidate(candidateText)
		}

		more, err := pterm.DefaultInteractiveConfirm.Show("Add another candidate for this target?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (s *Session) selectMode() error {
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{template.MatchExact.String(), template.MatchPartial.String()}).
		Show("Match mode")
	if err != nil {
		return err
	}
	if choice == template.MatchPartial.String() {
		s.Mode = template.MatchPartial
	} else {
		s.Mode = template.MatchExact
	}
	return nil
}

func (s *Session) previewCombinations(combos []combine.Combination) {
	pterm.Println(HeaderStyle.Render(fmt.Sprintf("Combinations (%d)", len(combos))))

	header := []string{"Label"}
	for _, target := range s.Targets {
		header = append(header, fmt.Sprintf("Target (%d)", target.Ordinal))
	}
	data := pterm.TableData{header}
	for _, combo := range combos {
		row := []string{combo.Label}
		for _, pair := range combo.Pairs {
			row = append(row, fmt.Sprintf("%s → %s",
				excerpt(pair.Target.Text, 16), excerpt(pair.Candidate.Text, 16)))
		}
		data = append(data, row)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to render combination table")
	}
}

func (s *Session) selectCombinations(combos []combine.Combination) ([]combine.Combination, error) {
	labels := make([]string, len(combos))
	for i, combo := range combos {
		labels[i] = combo.Label
	}

	chosen, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(labels).
		Show("Select combinations to generate (none selected = all)")
	if err != nil {
		return nil, err
	}
	if len(chosen) == 0 {
		return combos, nil
	}

	want := make(map[string]bool, len(chosen))
	for _, label := range chosen {
		want[label] = true
	}
	var selected []combine.Combination
	for _, combo := range combos {
		if want[combo.Label] {
			selected = append(selected, combo)
		}
	}
	return selected, nil
}
