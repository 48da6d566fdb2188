package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalUndoRestoresModelAndStates(t *testing.T) {
	cnf, err := FromSlice([][]int{{1, 2}, {-1, 3}})
	require.NoError(t, err)
	model := make([]int8, cnf.NbVars)
	states := buildClauseStates(cnf, model)
	before := append([]clauseState(nil), states...)

	var j journal
	j.open(IntToLit(1))
	model[0] = 1
	j.recordForced(IntToLit(3))
	model[2] = 1
	j.recordPrior(0, states[0])
	states[0].active = false

	require.True(t, j.undo(model, states))
	assert.Equal(t, int8(0), model[0])
	assert.Equal(t, int8(0), model[2])
	assert.Equal(t, before, states)
	assert.True(t, j.empty())
}

func TestJournalUndoOnEmptyReportsFalse(t *testing.T) {
	var j journal
	model := make([]int8, 1)
	states := make([]clauseState, 0)
	assert.False(t, j.undo(model, states))
}

func TestJournalRecordPriorStoresOldestOnly(t *testing.T) {
	var j journal
	j.open(IntToLit(1))

	first := clauseState{watched: [2]int{0, 1}, active: true}
	second := clauseState{watched: [2]int{0, nullWatch}, active: true}
	j.recordPrior(0, first)
	j.recordPrior(0, second)

	assert.Equal(t, first, j.top().priors[0], "the first snapshot within a frame must win")
}

func TestJournalFramesNest(t *testing.T) {
	var j journal
	j.open(IntToLit(1))
	j.open(IntToLit(2))
	assert.Equal(t, IntToLit(2), j.top().principal)
	assert.False(t, j.empty())

	model := make([]int8, 2)
	states := make([]clauseState, 0)
	require.True(t, j.undo(model, states))
	assert.Equal(t, IntToLit(1), j.top().principal)
}
