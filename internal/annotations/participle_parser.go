// Package annotations parses attribute blocks such as
//
//	[HttpGet("{id}"), Authorize(Roles = "Admin")]
//
// into structured attributes. The grammar is deliberately loose: argument
// values are kept as source text rather than evaluated.
package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ParticipleParser parses attribute blocks using alecthomas/participle
type ParticipleParser struct {
	parser *participle.Parser[attributeList]
}

type attributeList struct {
	Sections []*attributeSection `parser:"@@*"`
}

type attributeSection struct {
	Target     string          `parser:"'[' (@Ident ':')?"`
	Attributes []*attributeDef `parser:"@@ (',' @@)* ','? ']'"`
}

type attributeDef struct {
	Name      string      `parser:"@Ident (@'.' @Ident)*"`
	Arguments []*argument `parser:"('(' (@@ (',' @@)*)? ')')?"`
}

type argument struct {
	Name  string       `parser:"(@Ident ('=' | ':'))?"`
	Parts []*valuePart `parser:"@@+"`
}

type valuePart struct {
	Token string      `parser:"  @(String | Char | Number | Ident | '.')"`
	Op    string      `parser:"| @Op"`
	Group *valueGroup `parser:"| '(' @@ ')'"`
}

type valueGroup struct {
	Arguments []*argument `parser:"(@@ (',' @@)*)?"`
}

// NewParticipleParser creates a new attribute parser
func NewParticipleParser() *ParticipleParser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `@?"(?:[^"\\]|\\.)*"`},
		{Name: "Char", Pattern: `'(?:[^'\\]|\\.)'`},
		{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?[a-zA-Z]*`},
		{Name: "Ident", Pattern: `@?[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Op", Pattern: `[|&+\-*/<>!~?]`},
		{Name: "Punct", Pattern: `[\[\](),.:=]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[attributeList](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(3),
	)

	return &ParticipleParser{parser: parser}
}

// Parse parses one or more consecutive bracketed attribute sections
func (p *ParticipleParser) Parse(block string) ([]Attribute, error) {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil, nil
	}

	list, err := p.parser.ParseString("", block)
	if err != nil {
		return nil, fmt.Errorf("failed to parse attribute block %q: %w", block, err)
	}

	var attrs []Attribute
	for _, section := range list.Sections {
		for _, def := range section.Attributes {
			attr := Attribute{Name: def.Name, Target: section.Target}
			for _, arg := range def.Arguments {
				attr.Arguments = append(attr.Arguments, Argument{Name: arg.Name, Value: arg.text()})
			}
			attrs = append(attrs, attr)
		}
	}
	return attrs, nil
}

// ParseAll parses each block and concatenates the results. Blocks that fail
// to parse are returned in skipped so callers can report them.
func (p *ParticipleParser) ParseAll(blocks []string) (attrs []Attribute, skipped []string) {
	for _, block := range blocks {
		parsed, err := p.Parse(block)
		if err != nil {
			skipped = append(skipped, block)
			continue
		}
		attrs = append(attrs, parsed...)
	}
	return attrs, skipped
}

func (a *argument) text() string {
	var b strings.Builder
	for _, part := range a.Parts {
		switch {
		case part.Group != nil:
			args := make([]string, 0, len(part.Group.Arguments))
			for _, inner := range part.Group.Arguments {
				if inner.Name != "" {
					args = append(args, inner.Name+" = "+inner.text())
				} else {
					args = append(args, inner.text())
				}
			}
			b.WriteString("(" + strings.Join(args, ", ") + ")")
		case part.Op == "|" || part.Op == "&":
			b.WriteString(" " + part.Op + " ")
		case part.Op != "":
			b.WriteString(part.Op)
		default:
			b.WriteString(part.Token)
		}
	}
	return b.String()
}
