package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFromEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.grammar")
	defer teardown()
	//
	testCases := []struct {
		name   string
		src    string
		start  string
		rules  []string
		hasErr bool
	}{
		{
			name:  "plain alternatives",
			src:   `S = "a" | B . B = "b" .`,
			start: "S",
			rules: []string{"S' ::= S", "S ::= a", "S ::= B", "B ::= b"},
		},
		{
			name:  "repetition",
			src:   `Expr = Term { "+" Term } . Term = number . number = "0" … "9" .`,
			start: "Expr",
			rules: []string{
				"Expr' ::= Expr",
				"Expr ::= Term Expr_1",
				"Expr_1 ::= Expr_1 + Term",
				"Expr_1 ::=",
				"Term ::= number",
			},
		},
		{
			name:  "option and group",
			src:   `S = [ "x" ] ( "a" | "b" ) .`,
			start: "S",
			rules: []string{
				"S' ::= S",
				"S ::= S_1 S_2",
				"S_1 ::= x",
				"S_1 ::=",
				"S_2 ::= a",
				"S_2 ::= b",
			},
		},
		{
			name:   "range outside lexical production",
			src:    `S = "a" … "z" .`,
			start:  "S",
			hasErr: true,
		},
		{
			name:   "undefined production",
			src:    `S = T .`,
			start:  "S",
			hasErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g, err := FromEBNF(tc.name, strings.NewReader(tc.src), tc.start)
			if tc.hasErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			var rules []string
			for r := 0; r < g.NRules; r++ {
				rules = append(rules, g.RuleString(r))
			}
			assert.Equal(tc.rules, rules)
		})
	}
}
