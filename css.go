package approach

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseDeclarations parses an inline declaration block such as
// "width: 80px; background-color: #f00" into declarations in source order.
// Property names are lowercased. Values are rebuilt from their tokens, so
// spacing may differ from the source: "rgb(0, 128, 0)" yields "rgb(0,128,0)".
// Custom properties are skipped.
func ParseDeclarations(src string) ([]Declaration, error) {
	p := css.NewParser(parse.NewInputString(src), true)

	var decls []Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return decls, fmt.Errorf("parse declarations: %w", err)
			}
			return decls, nil
		case css.DeclarationGrammar:
			value := joinTokens(p.Values())
			if value == "" {
				continue
			}
			decls = append(decls, Declaration{
				Property: strings.ToLower(string(data)),
				Value:    value,
			})
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.Write(t.Data)
	}
	return b.String()
}
