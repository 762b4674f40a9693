package fu

import (
	"gotest.tools/assert"
	"testing"
)

func Test_Contains(t *testing.T) {
	assert.Assert(t, Contains([]string{"id", "amount"}, "id"))
	assert.Assert(t, !Contains([]string{"id", "amount"}, "label"))
	assert.Assert(t, !Contains(nil, "label"))
}

func Test_Filter(t *testing.T) {
	q := Filter([]string{"id", "amount", "label"}, func(s string) bool { return s != "amount" })
	assert.DeepEqual(t, q, []string{"id", "label"})
	assert.DeepEqual(t, Filter(nil, func(string) bool { return true }), []string{})
}
