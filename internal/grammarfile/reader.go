// Package grammarfile reads right-regular grammars written one production per line:
//
//	<S> ::= a<A> | b
//	<A> ::= a<A> | ε
//
// Lines without "::=" are ignored, so comments and blank lines need no marker.
package grammarfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	automaton "github.com/geange/grammar-automaton"
)

// ErrSyntax is returned for lines that cannot be a production.
var ErrSyntax = errors.New("grammar syntax error")

var grammarLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Newline", Pattern: `\n`},
	{Name: "Sep", Pattern: `::=`},
	{Name: "Bar", Pattern: `\|`},
	{Name: "Text", Pattern: `[^|\n:]+|:`},
})

var (
	tokNewline = grammarLexer.Symbols()["Newline"]
	tokSep     = grammarLexer.Symbols()["Sep"]
	tokBar     = grammarLexer.Symbols()["Bar"]
)

// line accumulates the tokens of one source line.
type line struct {
	number int
	seps   int
	head   strings.Builder
	alts   []string
	cur    strings.Builder
}

func (l *line) rule() (automaton.Rule, bool, error) {
	switch {
	case l.seps == 0:
		return automaton.Rule{}, false, nil
	case l.seps > 1:
		return automaton.Rule{}, false, fmt.Errorf("%w: line %d: more than one '::='", ErrSyntax, l.number)
	}
	alts := append(l.alts, strings.TrimSpace(l.cur.String()))
	return automaton.Rule{Head: strings.TrimSpace(l.head.String()), Alternatives: alts}, true, nil
}

// Read parses every production in r, in source order.
func Read(r io.Reader) ([]automaton.Rule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse("", string(data))
}

// ReadFile parses the grammar stored at path.
func ReadFile(path string) ([]automaton.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rules, err := Parse(path, string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Parse parses grammar source. name is only used in lexer error positions.
func Parse(name, src string) ([]automaton.Rule, error) {
	lex, err := grammarLexer.LexString(name, src)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	var rules []automaton.Rule
	cur := &line{number: 1}
	flush := func() error {
		rule, ok, err := cur.rule()
		if err != nil {
			return err
		}
		if ok {
			rules = append(rules, rule)
		}
		cur = &line{number: cur.number + 1}
		return nil
	}

	for _, tok := range tokens {
		switch {
		case tok.EOF():
		case tok.Type == tokNewline:
			if err := flush(); err != nil {
				return nil, err
			}
		case tok.Type == tokSep:
			cur.seps++
		case cur.seps == 0:
			cur.head.WriteString(tok.Value)
		case tok.Type == tokBar:
			cur.alts = append(cur.alts, strings.TrimSpace(cur.cur.String()))
			cur.cur.Reset()
		default:
			cur.cur.WriteString(tok.Value)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return rules, nil
}
