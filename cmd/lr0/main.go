package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/lrcore/lr"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	ebnfStart := flag.String("ebnf", "", "Read an EBNF grammar with this start production")
	dotfile := flag.String("dot", "", "Export state diagram to Graphviz file")
	htmlfile := flag.String("html", "", "Export GOTO table to HTML file")
	tree := flag.Bool("tree", false, "Display states as a tree")
	hash := flag.Bool("hash", false, "Print fingerprint of the automaton")
	interactive := flag.Bool("i", false, "Explore the automaton interactively")
	flag.Parse()
	level := tracing.TraceLevelFromString(*tlevel)
	for _, key := range []string{"lrcore.cmd", "lrcore.grammar", "lrcore.lr", "lrcore.scanner"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	if flag.NArg() != 1 {
		pterm.Error.Println("usage: lr0 [flags] grammar-file")
		flag.PrintDefaults()
		os.Exit(1)
	}
	//
	g, err := readGrammar(flag.Arg(0), *ebnfStart)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	g.Dump() // only visible in debug mode
	out, err := lr.Build(g)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	out.Dump(g) // only visible in debug mode
	pterm.Info.Printf("grammar %s: %d rules, %d states\n", g.Name, g.NRules, out.NStates())
	//
	if *hash {
		h, err := out.Fingerprint()
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(4)
		}
		pterm.Info.Println("fingerprint " + h)
	}
	if *dotfile != "" {
		exportTo(*dotfile, func(w io.Writer) error {
			return lr.NewCFSM(g, out).ExportGraphViz(w)
		})
	}
	if *htmlfile != "" {
		exportTo(*htmlfile, func(w io.Writer) error {
			return lr.GotoTableAsHTML(g, out, lr.BuildGotoTable(g, out), w)
		})
	}
	switch {
	case *interactive:
		explore(g, out)
	case *tree:
		printTree(g, out)
	default:
		if err := lr.WriteReport(os.Stdout, g, out); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(4)
		}
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func readGrammar(filename string, ebnfStart string) (*grammar.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := filepath.Base(filename)
	if ebnfStart != "" {
		tracer().Infof("reading EBNF grammar %s, start = %s", name, ebnfStart)
		return grammar.FromEBNF(name, f, ebnfStart)
	}
	tracer().Infof("reading grammar %s", name)
	return grammar.Read(name, f)
}

func exportTo(filename string, export func(io.Writer) error) {
	f, err := os.Create(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer f.Close()
	if err = export(f); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println("written " + filename)
}

// printTree displays every state with its items, transitions and reductions.
func printTree(g *grammar.Grammar, out *lr.Output) {
	ll := pterm.LeveledList{}
	for state, core := range out.States {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: fmt.Sprintf("state %d", state)})
		ll = append(ll, stateDetails(g, out, state, core)...)
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func stateDetails(g *grammar.Grammar, out *lr.Output, state int, core lr.Core) pterm.LeveledList {
	var ll pterm.LeveledList
	for _, item := range core.Items {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: g.ItemString(item)})
	}
	for _, t := range out.Transitions(state) {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%s ➞ state %d", g.Names[t.Symbol], t.To),
		})
	}
	for _, r := range out.ReductionsOf(state) {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("reduce %d: %s", r, g.RuleString(r)),
		})
	}
	return ll
}
