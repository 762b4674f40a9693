package tables

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

/*
DataFrame renders the table as a gota dataframe for downstream pipelines

Type detection is disabled, values cross over as strings exactly as
the csv parser produced them.
*/
func (t *Table) DataFrame() dataframe.DataFrame {
	records := make([][]string, 0, t.Len()+1)
	records = append(records, t.Names())
	for i := 0; i < t.Len(); i++ {
		records = append(records, t.Row(i))
	}
	return dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
}
