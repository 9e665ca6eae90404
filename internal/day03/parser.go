// File: parser.go
// Title: Gear Ratios Parser
// Description: Places the schematic tokens on a grid of rows and columns.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day03

// PartNumber is a number printed on the schematic. It spans Len columns
// starting at Col.
type PartNumber struct {
	Value int
	Row   int
	Col   int
	Len   int
}

// Mark is a symbol on the schematic
type Mark struct {
	Char string
	Row  int
	Col  int
}

// Schematic is the parsed engine schematic
type Schematic struct {
	Numbers []PartNumber
	Marks   []Mark
}

// Parse assigns every Number and Symbol token its row and column. Column
// positions are derived from the token offsets, so lines may differ in
// length.
func Parse(tokens []Token) Schematic {
	var s Schematic

	row, lineStart := 0, 0
	for _, tok := range tokens {
		col := tok.Pos - lineStart
		switch tok.Kind {
		case Newline:
			row++
			lineStart = tok.Pos + 1
		case Number:
			s.Numbers = append(s.Numbers, PartNumber{Value: tok.Number, Row: row, Col: col, Len: len(tok.Text)})
		case Symbol:
			s.Marks = append(s.Marks, Mark{Char: tok.Text, Row: row, Col: col})
		}
	}

	return s
}
