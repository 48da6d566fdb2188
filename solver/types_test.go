package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarLitRoundTrip(t *testing.T) {
	v := Var(6)
	assert.Equal(t, IntToLit(7), v.Lit())
	assert.Equal(t, IntToLit(-7), v.SignedLit(true))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "indet", Indet.String())
	assert.Equal(t, "sat", Sat.String())
	assert.Equal(t, "unsat", Unsat.String())
}

func TestStatusStringPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { _ = Status(99).String() })
}
