package sweep

import (
	"bytes"
	"encoding/csv"

	"github.com/deckgen/deckgen/pkg/errors"
	"github.com/deckgen/deckgen/pkg/logging"
	"github.com/deckgen/deckgen/pkg/types"
)

// Row is one parameter set, mapping token name to value.
type Row map[string]string

// ReadTable loads a CSV parameter table. The first record is the header;
// every following record becomes one Row. Short records are tolerated, the
// missing cells are simply absent from the row. A table with no data rows is
// a TABLE_EMPTY error.
func ReadTable(fsys types.FS, path string) ([]Row, error) {
	log := logging.GetLogger("sweep")
	log.Debug().Str("path", path).Msg("Reading parameter table")

	raw, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTableRead, "failed to read parameter table %s", path)
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTableParse, "failed to parse parameter table %s", path)
	}
	if len(records) < 2 {
		return nil, errors.Newf(errors.ErrTableEmpty, "parameter table %s is empty", path)
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	log.Info().Int("rows", len(rows)).Str("path", path).Msg("Loaded parameter sets")
	return rows, nil
}
