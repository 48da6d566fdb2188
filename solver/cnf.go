package solver

import (
	"fmt"
	"strings"
)

// A Clause is an ordered sequence of literals. Duplicates and
// tautologies are permitted.
type Clause struct {
	lits []Lit
}

// NewClause builds a Clause from an ordered list of literals.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// Len returns the number of literals in c, including duplicates.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the i-th literal of c.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Lits returns the underlying literal slice. Callers must not mutate
// it; it is shared with the occurrence index and the clause-state
// table's watch computation.
func (c *Clause) Lits() []Lit {
	return c.lits
}

// Eval reports whether c is satisfied by model. A partial model
// short-circuits on the first literal that evaluates true; reaching
// the end without one means every literal was false or unassigned.
// This is meaningful as "satisfied" vs. "not (yet) satisfied" —
// callers needing to distinguish an active conflict from an
// undetermined clause under a partial model use the clause-state
// table instead.
func (c *Clause) Eval(model []int8) bool {
	for _, l := range c.lits {
		v := model[l.Var()]
		if v == 0 {
			continue
		}
		if (v == 1) == l.IsPositive() {
			return true
		}
	}
	return false
}

// String renders c as a DIMACS clause line (without the trailing
// newline CNF.String adds between clauses).
func (c *Clause) String() string {
	var b strings.Builder
	for _, l := range c.lits {
		fmt.Fprintf(&b, "%d ", l.Int())
	}
	b.WriteByte('0')
	return b.String()
}

// A CNF is an ordered sequence of clauses, indexed 0..n-1.
type CNF struct {
	NbVars  int
	Clauses []*Clause
}

// Size returns the clause count.
func (cnf *CNF) Size() int {
	return len(cnf.Clauses)
}

// Eval reports whether every clause of cnf is satisfied by model.
// This is the belt-and-braces self-check the search driver runs
// against what it believes is a total model.
func (cnf *CNF) Eval(model []int8) bool {
	for _, c := range cnf.Clauses {
		if !c.Eval(model) {
			return false
		}
	}
	return true
}

// String renders cnf as a DIMACS CNF document, header included.
func (cnf *CNF) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", cnf.NbVars, len(cnf.Clauses))
	for _, c := range cnf.Clauses {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
