package lr

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/lrcore/lr/sparse"
)

// === CFSM ==================================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int   // state number
	Items  []int // kernel items
	Accept bool  // does this state reduce rule 0?
}

// CFSM edge between 2 states, directed and labeled with a symbol
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label int
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, len(s.Items))
}

// We need this for the set of states. It sorts states by ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(c1.ID, c2.ID)
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram, as an object graph. It is a view on an Output and
// intended for debugging and visualization.
type CFSM struct {
	g      *grammar.Grammar
	states *treeset.Set    // all the states
	edges  *arraylist.List // all the edges between states
	S0     *CFSMState      // start state
}

// NewCFSM creates the CFSM for an automaton built from g.
func NewCFSM(g *grammar.Grammar, out *Output) *CFSM {
	c := &CFSM{g: g}
	c.states = treeset.NewWith(stateComparator)
	c.edges = arraylist.New()
	byID := make([]*CFSMState, out.NStates())
	for i, core := range out.States {
		byID[i] = &CFSMState{ID: i, Items: core.Items}
		c.states.Add(byID[i])
	}
	for _, red := range out.Reductions {
		for _, r := range red.Rules {
			if r == 0 {
				byID[red.State].Accept = true
			}
		}
	}
	for _, sh := range out.Shifts {
		for _, to := range sh.Shifts {
			c.edges.Add(&cfsmEdge{
				from:  byID[sh.State],
				to:    byID[to],
				label: out.States[to].AccessingSymbol,
			})
		}
	}
	if len(byID) > 0 {
		c.S0 = byID[0]
	}
	return c
}

// State returns the state with number id, or nil.
func (c *CFSM) State(id int) *CFSMState {
	if id < 0 || id >= c.states.Size() {
		return nil
	}
	return c.states.Values()[id].(*CFSMState)
}

// AcceptingStates returns the IDs of all states reducing rule 0, in ascending order.
func (c *CFSM) AcceptingStates() []int {
	acc := make([]int, 0, 1)
	it := c.states.Iterator()
	for it.Next() {
		if s := it.Value().(*CFSMState); s.Accept {
			acc = append(acc, s.ID)
		}
	}
	return acc
}

func (c *CFSM) allEdges(s *CFSMState) []*cfsmEdge {
	it := c.edges.Iterator()
	r := make([]*cfsmEdge, 0, 2)
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		if e.from == s {
			r = append(r, e)
		}
	}
	return r
}

// Edges returns the outgoing edges of state id.
func (c *CFSM) Edges(id int) []Transition {
	s := c.State(id)
	if s == nil {
		return nil
	}
	var t []Transition
	for _, e := range c.allEdges(s) {
		t = append(t, Transition{Symbol: e.label, To: e.to.ID})
	}
	return t
}

// ExportGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ExportGraphViz(w io.Writer) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, x := range c.states.Values() {
		s := x.(*CFSMState)
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, c.forGraphviz(s.Items)))
	}
	it := c.edges.Iterator()
	for it.Next() {
		edge := it.Value().(*cfsmEdge)
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n",
			edge.from.ID, edge.to.ID, escapeDot(c.g.Names[edge.label])))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func (c *CFSM) forGraphviz(items []int) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\\l")
		}
		b.WriteString(escapeDot(c.g.ItemString(item)))
	}
	b.WriteString("\\l")
	return b.String()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "{", `\{`, "}", `\}`,
	"|", `\|`, "<", `\<`, ">", `\>`)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

// === GOTO table ============================================================

// Table is a parser table, indexed by state and symbol.
type Table struct {
	matrix *sparse.IntMatrix
}

// NullValue is the value of empty entries.
func (t *Table) NullValue() int32 {
	return t.matrix.NullValue()
}

// Value returns the entry for (state, sym).
func (t *Table) Value(state int, sym int) int32 {
	return t.matrix.Value(state, sym)
}

// ValueCount returns the number of non-empty entries.
func (t *Table) ValueCount() int {
	return t.matrix.ValueCount()
}

// BuildGotoTable builds the GOTO table of an automaton: entry (s, X) is the
// state reached from state s by shifting symbol X.
func BuildGotoTable(g *grammar.Grammar, out *Output) *Table {
	tracer().Infof("GOTO table of size %d x %d", out.NStates(), g.NSyms)
	table := &Table{
		matrix: sparse.NewIntMatrix(out.NStates(), g.NSyms, sparse.DefaultNullValue),
	}
	for _, sh := range out.Shifts {
		for _, to := range sh.Shifts {
			table.matrix.Set(sh.State, out.States[to].AccessingSymbol, int32(to))
		}
	}
	return table
}

// GotoTableAsHTML exports a GOTO-table in HTML-format.
func GotoTableAsHTML(g *grammar.Grammar, out *Output, table *Table, w io.Writer) error {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("GOTO table of size = %d<p>", table.ValueCount()))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, name := range g.Names {
		b.WriteString(fmt.Sprintf("<td>%s</td>", html.EscapeString(name)))
	}
	b.WriteString("</tr>\n")
	for state := 0; state < out.NStates(); state++ {
		b.WriteString(fmt.Sprintf("<tr><td>state %d</td>\n", state))
		for sym := 0; sym < g.NSyms; sym++ {
			td := "&nbsp;"
			if v := table.Value(state, sym); v != table.NullValue() {
				td = fmt.Sprintf("%d", v)
			}
			b.WriteString("<td>")
			b.WriteString(td)
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// === Conflicts =============================================================

// ConflictKind classifies inadequate LR(0) states.
type ConflictKind int8

// Kinds of conflicts
const (
	ShiftReduce ConflictKind = iota
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ShiftReduce {
		return "shift/reduce"
	}
	return "reduce/reduce"
}

// Conflict is an inadequate state of an LR(0) automaton.
type Conflict struct {
	State int
	Kind  ConflictKind
	Rules []int // rules reduced in State
}

// Conflicts finds all states of an automaton for which an LR(0) parser could
// not decide on an action: states with a reduction and a shift over a
// terminal, and states with more than one reduction. A state may contribute
// a conflict of each kind.
func Conflicts(g *grammar.Grammar, out *Output) []Conflict {
	var conflicts []Conflict
	for _, red := range out.Reductions {
		for _, t := range out.Transitions(red.State) {
			if g.IsTerminal(t.Symbol) {
				tracer().Debugf("state %d has a shift/reduce conflict", red.State)
				conflicts = append(conflicts, Conflict{State: red.State, Kind: ShiftReduce, Rules: red.Rules})
				break
			}
		}
		if len(red.Rules) > 1 {
			tracer().Debugf("state %d has a reduce/reduce conflict", red.State)
			conflicts = append(conflicts, Conflict{State: red.State, Kind: ReduceReduce, Rules: red.Rules})
		}
	}
	return conflicts
}
