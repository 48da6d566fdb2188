package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatModelSignsAndOrders(t *testing.T) {
	cnf, err := FromSlice([][]int{{1, 2}, {-2, 3}})
	require.NoError(t, err)
	model := []int8{1, -1, 1}
	rendered, valid := FormatModel(cnf, model)
	assert.Equal(t, "1 -2 3", rendered)
	assert.True(t, valid)
}

func TestFormatModelDetectsInvalidModel(t *testing.T) {
	cnf, err := FromSlice([][]int{{1, 2}})
	require.NoError(t, err)
	model := []int8{-1, -1}
	_, valid := FormatModel(cnf, model)
	assert.False(t, valid, "neither literal of the clause is satisfied")
}

func TestFormatModelEmpty(t *testing.T) {
	cnf := &CNF{}
	rendered, valid := FormatModel(cnf, nil)
	assert.Equal(t, "", rendered)
	assert.True(t, valid)
}
