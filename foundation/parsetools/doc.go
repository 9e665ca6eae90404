// File: doc.go
// Title: Parsetools Package Documentation
// Description: Package documentation for the single-pass lexer/parser
//              toolkit shared by the puzzle solvers.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial documentation

/*
Package parsetools provides a small, backtrack-free toolkit for turning a
character sequence into tokens and tokens into a model.

Lexing is driven by Transform, which repeatedly applies a step function
until the input is exhausted:

	tokens := parsetools.Transform([]rune("12\n"), func(in []rune, pos parsetools.Index) (parsetools.Index, Tok) {
		switch c := in[pos]; {
		case unicode.IsDigit(c):
			next, n := parsetools.ReadNumber(in, pos)
			return next, Tok{Kind: Number, Number: n, Pos: pos}
		case c == '\n':
			return pos + 1, Tok{Kind: Newline, Pos: pos}
		}
		parsetools.FailMalformedCharacter(pos, in[pos])
		panic("unreachable")
	})

Parsers are plain recursive-descent functions that thread an explicit
position through TryConsume, ExpectConsume and ConsumeNumbersWhile. Token
equality for control flow is by Kind only; payload is ignored.

Fault model

Every contract violation (an unknown character, an unexpected token, a
fixed-size construct with the wrong number of elements) is fatal. The
toolkit signals it by panicking with a coded *error.Error. Exactly one
boundary per run converts the panic back into an error:

	func solve(input []rune) (answers Answers, err error) {
		defer parsetools.Recover(&err)
		...
	}

Nothing inside a lexer or parser recovers or resynchronizes.
*/
package parsetools
