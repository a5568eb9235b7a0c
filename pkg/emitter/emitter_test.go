package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckgen/deckgen/pkg/combine"
	"github.com/deckgen/deckgen/pkg/template"
	"github.com/deckgen/deckgen/pkg/testutil"
)

func utf8Template(name, text string) *template.Template {
	return &template.Template{Name: name, Text: text, Encoding: template.EncodingUTF8}
}

func TestWriteJob(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	em := New(fsys, "/out/jobs", ".inp")

	path, err := em.WriteJob("case_001", "content", utf8Template("model.inp", ""))
	require.NoError(t, err)
	assert.Equal(t, "/out/jobs/case_001.inp", path)

	// Directory was created and the contents match exactly.
	assert.Equal(t, []byte("content"), testutil.ReadFile(t, fsys, path))

	info, err := fsys.Stat("/out/jobs")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteJobExistingDir(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/out/jobs", 0755))
	em := New(fsys, "/out/jobs", ".inp")

	_, err := em.WriteJob("case_001", "first", utf8Template("model.inp", ""))
	require.NoError(t, err)
	_, err = em.WriteJob("case_001", "second", utf8Template("model.inp", ""))
	require.NoError(t, err)

	assert.Equal(t, []byte("second"), testutil.ReadFile(t, fsys, "/out/jobs/case_001.inp"))
}

func TestWriteJobShiftJIS(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	em := New(fsys, "/jobs", ".inp")
	tmpl := &template.Template{Name: "model.inp", Encoding: template.EncodingShiftJIS}

	path, err := em.WriteJob("case_001", "日本", tmpl)
	require.NoError(t, err)

	// Written in the template's source encoding, not UTF-8.
	assert.Equal(t, []byte{0x93, 0xFA, 0x96, 0x7B}, testutil.ReadFile(t, fsys, path))
}

func enumerate(t *testing.T, defs map[string][]string, order []string) []combine.Combination {
	t.Helper()
	var targets []combine.Target
	for i, text := range order {
		target := combine.Target{Ordinal: i + 1, Text: text}
		for _, c := range defs[text] {
			target.AddCandidate(c)
		}
		targets = append(targets, target)
	}
	return combine.Enumerate(targets)
}

func TestEmitCombinations(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	em := New(fsys, "/jobs", ".inp")
	tmpl := utf8Template("model.inp", "*DENSITY\n7.8e-9\n*ELASTIC\n210000\n")

	combos := enumerate(t, map[string][]string{
		"7.8e-9": {"2.7e-9", "4.4e-9"},
		"210000": {"70000"},
	}, []string{"7.8e-9", "210000"})
	require.Len(t, combos, 2)

	result, err := em.EmitCombinations(tmpl, combos, template.MatchExact)
	require.NoError(t, err)

	assert.Equal(t, []string{"/jobs/model_(1-1).inp", "/jobs/model_(2-1).inp"}, result.Written)
	assert.Empty(t, result.Skipped)

	first := testutil.ReadFile(t, fsys, "/jobs/model_(1-1).inp")
	assert.Equal(t, "*DENSITY\n2.7e-9\n*ELASTIC\n70000\n", string(first))
}

func TestEmitCombinationsSkipsZeroMatches(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	em := New(fsys, "/jobs", ".inp")
	tmpl := utf8Template("model.inp", "only TARGET_A here")

	combos := enumerate(t, map[string][]string{
		"TARGET_A": {"a1"},
		"ABSENT":   {"b1", "b2"},
	}, []string{"TARGET_A", "ABSENT"})
	require.Len(t, combos, 2)

	result, err := em.EmitCombinations(tmpl, combos, template.MatchExact)
	require.NoError(t, err)

	// Every combination includes the unmatched target, so nothing is written.
	assert.Empty(t, result.Written)
	assert.Equal(t, []string{"1-1", "1-2"}, result.Skipped)

	_, err = fsys.Stat("/jobs/model_(1-1).inp")
	assert.Error(t, err)
}

func TestEmitCombinationsPartialMode(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	em := New(fsys, "/jobs", ".inp")
	tmpl := utf8Template("model.inp", "*Material, name=STEEL\n")

	combos := enumerate(t, map[string][]string{
		"steel": {"ALU"},
	}, []string{"steel"})

	result, err := em.EmitCombinations(tmpl, combos, template.MatchPartial)
	require.NoError(t, err)
	require.Len(t, result.Written, 1)

	content := testutil.ReadFile(t, fsys, result.Written[0])
	assert.Equal(t, "*Material, name=ALU\n", string(content))
}
