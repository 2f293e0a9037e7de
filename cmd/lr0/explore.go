package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/lrcore/lr"
	"github.com/pterm/pterm"
)

// Explorer is an interactive viewer for an automaton.
type Explorer struct {
	g    *grammar.Grammar
	out  *lr.Output
	cfsm *lr.CFSM
	repl *readline.Instance
}

const helpText = `commands:
    state N        show kernel items, transitions and reductions of state N
    goto N SYM     show the state reached from state N by shifting SYM
    rules          list the grammar rules
    conflicts      list inadequate states
    help           show this text
    quit           leave (or <ctrl>D)`

func explore(g *grammar.Grammar, out *lr.Output) {
	repl, err := readline.New("lr0> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer repl.Close()
	x := &Explorer{g: g, out: out, cfsm: lr.NewCFSM(g, out), repl: repl}
	pterm.Info.Println("Quit with <ctrl>D, try 'help'")
	for {
		line, err := x.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := x.Execute(strings.Fields(line))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute executes a single command.
func (x *Explorer) Execute(args []string) (bool, error) {
	switch args[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Println(helpText)
	case "rules":
		for r := 0; r < x.g.NRules; r++ {
			fmt.Printf("%4d  %s\n", r, x.g.RuleString(r))
		}
	case "conflicts":
		conflicts := lr.Conflicts(x.g, x.out)
		if len(conflicts) == 0 {
			pterm.Info.Println("grammar is LR(0)")
		}
		for _, c := range conflicts {
			fmt.Printf("state %d: %s conflict, reduces %v\n", c.State, c.Kind, c.Rules)
		}
	case "state":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: state N")
		}
		state, err := x.stateArg(args[1])
		if err != nil {
			return false, err
		}
		x.printState(state)
	case "goto":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: goto N SYM")
		}
		state, err := x.stateArg(args[1])
		if err != nil {
			return false, err
		}
		sym, ok := x.g.SymbolByName(args[2])
		if !ok {
			return false, fmt.Errorf("unknown symbol %q", args[2])
		}
		to := x.out.Goto(state, sym)
		if to < 0 {
			return false, fmt.Errorf("state %d has no transition for %s", state, args[2])
		}
		x.printState(to)
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", args[0])
	}
	return false, nil
}

func (x *Explorer) stateArg(arg string) (int, error) {
	state, err := strconv.Atoi(arg)
	if err != nil || x.cfsm.State(state) == nil {
		return 0, fmt.Errorf("no state %q", arg)
	}
	return state, nil
}

func (x *Explorer) printState(id int) {
	s := x.cfsm.State(id)
	label := fmt.Sprintf("state %d", id)
	if s.Accept {
		label += " (accepting)"
	}
	pterm.Println(label)
	for _, item := range s.Items {
		fmt.Printf("    %s\n", x.g.ItemString(item))
	}
	for _, e := range x.cfsm.Edges(id) {
		fmt.Printf("    %-12s ➞ %d\n", x.g.Names[e.Symbol], e.To)
	}
	for _, r := range x.out.ReductionsOf(id) {
		fmt.Printf("    reduce %d  (%s)\n", r, x.g.RuleString(r))
	}
}
