package lr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeSmallGrammar(t)
	out, err := Build(g)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = WriteReport(&buf, g, out); err != nil {
		t.Fatal(err)
	}
	report := buf.String()
	t.Logf("\n%s", report)
	for _, line := range []string{
		"state 0\n    S' ::= . S\n",
		"    a            shift 1\n",
		"    S            goto 2\n",
		"    reduce 2  (S ::=)\n    shift/reduce conflict\n",
		"state 1\n    S ::= a .\n",
		"    reduce 1  (S ::= a)\n",
		"    accept    (S' ::= S)\n",
		"3 grammar rules, 3 states\n",
		"1 conflicts\n",
	} {
		assert.Contains(t, report, line)
	}
}

func TestReportWithoutConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeEOFGrammar(t)
	out, _ := Build(g)
	var buf bytes.Buffer
	assert.NoError(t, WriteReport(&buf, g, out))
	assert.Contains(t, buf.String(), "    S ::= a . #eof\n")
	assert.False(t, strings.Contains(buf.String(), "conflict"))
}
