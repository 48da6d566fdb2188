package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClauseStatesWatchesUnassignedLiterals(t *testing.T) {
	cnf, err := FromSlice([][]int{{1, 2, 3}})
	require.NoError(t, err)
	model := make([]int8, cnf.NbVars)
	states := buildClauseStates(cnf, model)
	require.Len(t, states, 1)
	assert.Equal(t, 0, states[0].watched[0])
	assert.Equal(t, 1, states[0].watched[1])
	assert.True(t, states[0].active)
}

func TestBuildClauseStatesUnitClauseHasOneWatch(t *testing.T) {
	cnf, err := FromSlice([][]int{{1}})
	require.NoError(t, err)
	model := make([]int8, cnf.NbVars)
	states := buildClauseStates(cnf, model)
	require.Len(t, states, 1)
	assert.True(t, states[0].unit())
	assert.Equal(t, IntToLit(1), states[0].unitLit(cnf.Clauses[0]))
}

func TestClauseStateConflictWhenBothWatchesNull(t *testing.T) {
	st := clauseState{watched: [2]int{nullWatch, nullWatch}, active: true}
	assert.True(t, st.conflict())
	assert.False(t, st.unit())
}

func TestClauseStateInactiveNeverConflictsOrUnits(t *testing.T) {
	st := clauseState{watched: [2]int{nullWatch, nullWatch}, active: false}
	assert.False(t, st.conflict())
	assert.False(t, st.unit())
}

func TestFindUnassignedSkipsBanned(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(2), IntToLit(3)})
	model := make([]int8, 3)
	assert.Equal(t, 1, findUnassigned(c, model, 0))
}

func TestFindUnassignedReturnsNullWatchWhenAllAssigned(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(2)})
	model := []int8{1, -1}
	assert.Equal(t, nullWatch, findUnassigned(c, model, nullWatch))
}
