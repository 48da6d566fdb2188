package solver

import "github.com/sirupsen/logrus"

// Stats carries search bookkeeping, printed by the CLI under
// --verbose (cmd/dpllsat).
type Stats struct {
	NbDecisions  int
	NbBacktracks int
}

// Solver is the DPLL search driver. Its state is the clause-state
// table, the partial model, the delta journal, and the LIFO stack of
// literals still to try. It is single-threaded and synchronous: no
// method suspends, yields, or performs I/O.
type Solver struct {
	cnf *CNF
	log logrus.FieldLogger

	occ     occTable
	states  []clauseState
	model   []int8
	j       journal
	pending []Lit
	// unitStack accumulates units discovered while refreshing watches
	// during propagation: an explicit stack drained before falling
	// back to a full rescan.
	unitStack []Lit

	Stats Stats
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger overrides the solver's logger (default:
// logrus.StandardLogger()).
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Solver) { s.log = log }
}

// New returns a Solver for cnf. The search itself only begins on
// Solve; New performs no work on cnf beyond storing it.
func New(cnf *CNF, opts ...Option) *Solver {
	s := &Solver{cnf: cnf, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model returns the (possibly partial, if called before Solve
// returns) assignment: model[v] is 0 if v is unassigned, 1 if true,
// -1 if false.
func (s *Solver) Model() []int8 {
	return s.model
}

// Solve decides the satisfiability of the CNF this Solver was built
// on and returns Sat or Unsat. On Sat, Model returns a total
// assignment satisfying every clause.
func (s *Solver) Solve() Status {
	if s.cnf.Size() == 0 {
		// An empty CNF is vacuously satisfied by any model; the
		// completion policy (assign false) applies uniformly even
		// though no decision ever ran.
		s.model = make([]int8, s.cnf.NbVars)
		for v := range s.model {
			s.model[v] = -1
		}
		return Sat
	}
	for _, c := range s.cnf.Clauses {
		if c.Len() == 0 {
			// A structurally empty clause short-circuits to UNSAT
			// before init ever runs.
			return Unsat
		}
	}
	s.init()
	return s.run()
}

// init builds the occurrence index and clause-state table and seeds
// the pending stack with both polarities of the first variable.
func (s *Solver) init() {
	s.model = make([]int8, s.cnf.NbVars)
	s.occ = buildOccurrence(s.cnf)
	s.states = buildClauseStates(s.cnf, s.model)
	s.j = journal{}
	s.unitStack = nil
	s.pending = nil

	v0, ok := s.chooseVar()
	if !ok {
		return
	}
	// Push (v0, false) then (v0, true): true is tried first after pop.
	s.pending = append(s.pending, v0.SignedLit(true), v0.Lit())
}

// run is the main DPLL loop.
func (s *Solver) run() Status {
	for len(s.pending) > 0 {
		lit := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]

		s.Stats.NbDecisions++
		s.log.Debugf("decide %d", lit.Int())

		if !s.decide(lit) {
			s.Stats.NbBacktracks++
			if !s.backtrack() {
				return Unsat
			}
			continue
		}

		if s.allInactive() {
			s.completeModel()
			return Sat
		}

		if s.complete() {
			// Belt-and-braces check: re-evaluate the CNF directly
			// before trusting a total model. A failure here is
			// treated as an ordinary (soft) conflict.
			if s.cnf.Eval(s.model) {
				return Sat
			}
			s.log.Debugf("complete model failed self-check, backtracking")
			s.Stats.NbBacktracks++
			if !s.backtrack() {
				return Unsat
			}
			continue
		}

		v, ok := s.chooseVar()
		if !ok {
			// Unreachable: the solver isn't complete, so some variable
			// must still be unassigned.
			return Unsat
		}
		s.pending = append(s.pending, v.SignedLit(true), v.Lit())
	}
	return Unsat
}

// decide opens a new decision frame for lit, extends the model, and
// drives unit propagation and pure-literal elimination to a fixpoint
// under this one frame. It returns false as soon as a conflict is
// detected.
func (s *Solver) decide(lit Lit) bool {
	s.j.open(lit)
	s.model[lit.Var()] = sign(lit)

	if !s.propagate(lit) {
		return false
	}

	for {
		unit, ok := s.findUnit()
		if !ok {
			break
		}
		s.j.recordForced(unit)
		s.model[unit.Var()] = sign(unit)
		if !s.propagate(unit) {
			return false
		}
	}

	for {
		pure, ok := s.findPure()
		if !ok {
			break
		}
		s.j.recordForced(pure)
		s.model[pure.Var()] = sign(pure)
		s.pureAssign(pure)
	}

	return true
}

// propagate reacts to lit having just become true: clauses containing
// lit are now satisfied and go inactive; clauses containing ¬lit lose
// a watch and must refresh it, possibly becoming unit or conflicting.
func (s *Solver) propagate(lit Lit) bool {
	for _, i := range s.occ.clauses(lit) {
		st := s.states[i]
		if st.active {
			s.j.recordPrior(i, st)
			st.active = false
			s.states[i] = st
		}
	}

	negated := lit.Negation()
	clauses := s.cnf.Clauses
	for _, i := range s.occ.clauses(negated) {
		st := s.states[i]
		if !st.active {
			continue
		}
		s.j.recordPrior(i, st)
		c := clauses[i]
		switch {
		case st.watched[0] != nullWatch && c.Get(st.watched[0]) == negated:
			st.watched[0] = findUnassigned(c, s.model, st.watched[1])
		case st.watched[1] != nullWatch && c.Get(st.watched[1]) == negated:
			st.watched[1] = findUnassigned(c, s.model, st.watched[0])
		}
		s.states[i] = st
		if st.conflict() {
			return false
		}
		if st.unit() {
			s.unitStack = append(s.unitStack, st.unitLit(c))
		}
	}
	return true
}

// pureAssign marks every active clause containing pure as inactive:
// pure is already known to occur with only one polarity among active
// clauses, so assigning it true can never create a unit or a
// conflict.
func (s *Solver) pureAssign(pure Lit) {
	for _, i := range s.occ.clauses(pure) {
		st := s.states[i]
		if st.active {
			s.j.recordPrior(i, st)
			st.active = false
			s.states[i] = st
		}
	}
}

// findUnit returns a literal forced by some active unit clause, if
// any. The explicit stack accumulated during propagation is drained
// first; once empty, it falls back to a linear rescan of the
// clause-state table.
func (s *Solver) findUnit() (Lit, bool) {
	if n := len(s.unitStack); n > 0 {
		lit := s.unitStack[n-1]
		s.unitStack = s.unitStack[:n-1]
		return lit, true
	}
	for i, st := range s.states {
		if st.unit() {
			return st.unitLit(s.cnf.Clauses[i]), true
		}
	}
	return 0, false
}

// findPure returns a pure literal under the current state, if any:
// the first unassigned variable occurring with only one polarity
// among active clauses.
func (s *Solver) findPure() (Lit, bool) {
	for v := Var(0); int(v) < len(s.model); v++ {
		if s.model[v] != 0 {
			continue
		}
		pos := s.hasActive(s.occ.pos[v])
		neg := s.hasActive(s.occ.neg[v])
		if pos == neg {
			continue
		}
		if pos {
			return v.Lit(), true
		}
		return v.SignedLit(true), true
	}
	return 0, false
}

func (s *Solver) hasActive(indices []int) bool {
	for _, i := range indices {
		if s.states[i].active {
			return true
		}
	}
	return false
}

// backtrack undoes decision frames until the topmost remaining one's
// principal is the negation of the literal now on top of pending,
// then undoes that frame too, so the next loop iteration tries the
// opposite polarity from a clean state.
func (s *Solver) backtrack() bool {
	if s.j.empty() || len(s.pending) == 0 {
		return false
	}
	target := s.pending[len(s.pending)-1].Negation()
	for {
		if s.j.empty() {
			return false
		}
		if s.j.top().principal == target {
			break
		}
		s.j.undo(s.model, s.states)
	}
	s.j.undo(s.model, s.states)
	s.unitStack = s.unitStack[:0]
	return true
}

// chooseVar returns the first unassigned variable in deterministic
// (ascending) order, or false if the model is already complete.
// Iteration order is otherwise arbitrary but must be deterministic
// for reproducibility.
func (s *Solver) chooseVar() (Var, bool) {
	for v := Var(0); int(v) < len(s.model); v++ {
		if s.model[v] == 0 {
			return v, true
		}
	}
	return 0, false
}

// allInactive reports whether every clause is satisfied under the
// current partial model.
func (s *Solver) allInactive() bool {
	for _, st := range s.states {
		if st.active {
			return false
		}
	}
	return true
}

// complete reports whether every variable has been assigned.
func (s *Solver) complete() bool {
	for _, m := range s.model {
		if m == 0 {
			return false
		}
	}
	return true
}

// completeModel assigns false to any variable left unassigned once
// every clause is already satisfied.
func (s *Solver) completeModel() {
	for v := range s.model {
		if s.model[v] == 0 {
			s.model[v] = -1
		}
	}
}

// sign returns the model value (1 or -1) a decision or forced
// assignment of lit assigns to lit's variable.
func sign(lit Lit) int8 {
	if lit.IsPositive() {
		return 1
	}
	return -1
}
