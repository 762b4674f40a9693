package tables

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/xerrors"
)

/*
ReadCsv decodes comma-separated values into a new table

When noHeader is true every row including the first is data and columns
get positional names Column1..ColumnN, otherwise the first row supplies
the column names.
*/
func ReadCsv(rd io.Reader, noHeader bool) (*Table, error) {
	records, err := csv.NewReader(rd).ReadAll()
	if err != nil {
		return nil, xerrors.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, xerrors.New("no columns to parse from empty csv input")
	}
	names := records[0]
	rows := records[1:]
	if noHeader {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = fmt.Sprintf("Column%d", i+1)
		}
		rows = records
	}
	columns := make([]Column, len(names))
	for j, name := range names {
		values := make([]string, len(rows))
		for i, row := range rows {
			values[i] = row[j]
		}
		columns[j] = Column{name: name, values: values}
	}
	return &Table{columns: columns, length: len(rows)}, nil
}
