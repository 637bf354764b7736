/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type lexeme struct {
	tt   css.TokenType
	text string
}

// Normalize cleans a raw declaration value: comments are removed,
// whitespace runs collapse to one space, and a trailing !important is dropped.
func Normalize(value string) string {
	lexer := css.NewLexer(parse.NewInputString(value))

	var tokens []lexeme
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		switch tt {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			tokens = append(tokens, lexeme{tt, " "})
		default:
			tokens = append(tokens, lexeme{tt, string(text)})
		}
	}

	tokens = dropImportant(tokens)

	var sb strings.Builder
	for i, tok := range tokens {
		if tok.tt == css.WhitespaceToken && i > 0 && tokens[i-1].tt == css.WhitespaceToken {
			continue
		}
		sb.WriteString(tok.text)
	}
	return strings.TrimSpace(sb.String())
}

// dropImportant removes a "!" delimiter followed by the "important" keyword.
func dropImportant(tokens []lexeme) []lexeme {
	out := tokens[:0]
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.tt == css.DelimToken && tok.text == "!" {
			j := i + 1
			for j < len(tokens) && tokens[j].tt == css.WhitespaceToken {
				j++
			}
			if j < len(tokens) && tokens[j].tt == css.IdentToken && strings.EqualFold(tokens[j].text, "important") {
				i = j
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}
