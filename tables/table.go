/*
Package tables implements an in-memory table of named columns
sharing a common row count
*/
package tables

import (
	"go-ml.dev/pkg/zorros"

	"go-ml.dev/pkg/dataset/fu"
)

/*
Column is an immutable named vector of scalar values
*/
type Column struct {
	name   string
	values []string
}

/*
Col creates a new column with the given name and a copy of the given values
*/
func Col(name string, values []string) Column {
	v := make([]string, len(values))
	copy(v, values)
	return Column{name: name, values: v}
}

/*
Name returns the column name
*/
func (c Column) Name() string { return c.name }

/*
Len returns the count of values in the column
*/
func (c Column) Len() int { return len(c.values) }

/*
String returns the i-th value of the column
*/
func (c Column) String(i int) string { return c.values[i] }

/*
Strings returns a copy of the column values
*/
func (c Column) Strings() []string {
	v := make([]string, len(c.values))
	copy(v, c.values)
	return v
}

/*
Table is an ordered collection of named columns with a common row count
*/
type Table struct {
	columns []Column
	length  int
}

/*
New creates a table from the given columns

Throws a panic if columns have different lengths.
*/
func New(columns ...Column) *Table {
	length := 0
	for i, c := range columns {
		if i == 0 {
			length = c.Len()
		}
		if c.Len() != length {
			panic(zorros.Panic(zorros.Errorf("column `%v` has %v values, expected %v", c.Name(), c.Len(), length)))
		}
	}
	return &Table{columns: columns, length: length}
}

/*
Len returns the count of rows in the table
*/
func (t *Table) Len() int { return t.length }

/*
Cols returns the count of columns in the table
*/
func (t *Table) Cols() int { return len(t.columns) }

/*
Names returns the column names in table order
*/
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

/*
Has returns true if the table has a column with the given name
*/
func (t *Table) Has(name string) bool {
	for _, c := range t.columns {
		if c.name == name {
			return true
		}
	}
	return false
}

/*
Col returns the column with the given name and the zero Column if there is no such column
*/
func (t *Table) Col(name string) Column {
	for _, c := range t.columns {
		if c.name == name {
			return c
		}
	}
	return Column{}
}

/*
Row returns the i-th row of the table as a slice of values in column order
*/
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.values[i]
	}
	return row
}

/*
Except returns a new table without the named columns, column order otherwise preserved

The result is a copy, the row count stays unchanged even if every column is removed.
*/
func (t *Table) Except(names ...string) *Table {
	columns := []Column{}
	for _, c := range t.columns {
		if !fu.Contains(names, c.name) {
			columns = append(columns, Col(c.name, c.values))
		}
	}
	return &Table{columns: columns, length: t.length}
}
