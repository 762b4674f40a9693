package tables

import (
	"gotest.tools/assert"
	"testing"
)

func testTable() *Table {
	return New(
		Col("id", []string{"a", "b", "c"}),
		Col("amount", []string{"10", "20", "30"}),
		Col("label", []string{"0", "1", "0"}),
	)
}

func Test_Table(t *testing.T) {
	q := testTable()
	assert.Assert(t, q.Len() == 3)
	assert.Assert(t, q.Cols() == 3)
	assert.DeepEqual(t, q.Names(), []string{"id", "amount", "label"})
	assert.Assert(t, q.Has("amount"))
	assert.Assert(t, !q.Has("Amount"))
	assert.Assert(t, q.Col("label").String(1) == "1")
	assert.DeepEqual(t, q.Row(2), []string{"c", "30", "0"})
}

func Test_Except(t *testing.T) {
	q := testTable().Except("label")
	assert.DeepEqual(t, q.Names(), []string{"id", "amount"})
	assert.Assert(t, q.Len() == 3)
	assert.Assert(t, !q.Has("label"))
}

func Test_ExceptAll(t *testing.T) {
	q := testTable().Except("id", "amount", "label")
	assert.Assert(t, q.Cols() == 0)
	assert.Assert(t, q.Len() == 3)
}

func Test_ExceptUnknown(t *testing.T) {
	q := testTable().Except("nosuch", "")
	assert.Assert(t, q.Cols() == 3)
}

func Test_ColCopies(t *testing.T) {
	v := []string{"1", "2"}
	c := Col("x", v)
	v[0] = "mutated"
	assert.Assert(t, c.String(0) == "1")
	s := c.Strings()
	s[1] = "mutated"
	assert.Assert(t, c.String(1) == "2")
}

func Test_ExceptCopies(t *testing.T) {
	q := testTable()
	x := q.Except("label")
	assert.Assert(t, x.Col("id").String(0) == q.Col("id").String(0))
}

func Test_NewRagged(t *testing.T) {
	defer func() { assert.Assert(t, recover() != nil) }()
	New(Col("a", []string{"1", "2"}), Col("b", []string{"1"}))
	t.Fatal("must panic")
}
