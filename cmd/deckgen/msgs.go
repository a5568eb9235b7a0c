package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Generate simulation input decks from a template"
	MsgSweepShort     = "Generate one deck per CSV parameter row"
	MsgCombineShort   = "Generate decks interactively from replacement combinations"
	MsgGenconfigShort = "Print the default configuration"
	MsgVersionShort   = "Print version information"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagTemplate  = "Path to the input deck template file"
	MsgFlagParams    = "Path to the CSV parameter sweep table"
	MsgFlagJobsDir   = "Directory to output generated files (default from config)"
	MsgFlagOutputDir = "Directory to output generated files (default from config)"
	MsgFlagFormat    = "Config output format: toml or yaml"
)

// Long messages (multi-line)
const (
	MsgRootLong = `deckgen generates parameterized simulation input decks from a template.

Tokens in the template are substituted either from a CSV parameter sweep
table (sweep) or from an interactively built set of replacement
combinations (combine). One output file is written per parameter row or
combination.`

	MsgSweepLong = `sweep reads a CSV parameter table with a header row and writes one deck
per data row. {{TOKEN}} placeholders in the template are replaced with the
row's values; a row that leaves tokens unresolved aborts the run.

Job names come from the first recognized name column (job_name, JOB_NAME,
JobName, case, CASE, Case) with a non-empty value, sanitized for the
filesystem, or fall back to case_001, case_002, ...`

	MsgCombineLong = `combine collects target strings and replacement candidates interactively,
enumerates every combination of candidates, and writes one deck per
selected combination. Targets are matched exactly or as case-insensitive
partial matches; a combination whose targets never match is skipped.`

	MsgSweepExample = `  deckgen sweep --template templates/model.inp --params params/sweep.csv
  deckgen sweep --template model.inp --params sweep.csv --jobs-dir out -v`

	MsgCombineExample = `  deckgen combine --template templates/model.inp
  deckgen combine --template model.inp --output-dir out`
)
