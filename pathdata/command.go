package pathdata

import (
	"unicode"

	"golang.org/x/exp/slices"
)

// Command describes how many numerals one repetition of a path command
// consumes and which of them are y coordinates.
type Command struct {
	Params   int
	YIndices []int
}

func (c Command) IsY(index int) bool {
	return slices.Contains(c.YIndices, index)
}

// CommandTable maps uppercase command letters to their descriptors. It is
// read only once built.
type CommandTable struct {
	commands map[rune]Command
}

func NewCommandTable() *CommandTable {
	return &CommandTable{
		commands: map[rune]Command{
			'M': {Params: 2, YIndices: []int{1}},
			'L': {Params: 2, YIndices: []int{1}},
			'T': {Params: 2, YIndices: []int{1}},
			'H': {Params: 1},
			'V': {Params: 1, YIndices: []int{0}},
			'C': {Params: 6, YIndices: []int{1, 3, 5}},
			'S': {Params: 4, YIndices: []int{1, 3}},
			'Q': {Params: 4, YIndices: []int{1, 3}},
			'A': {Params: 7, YIndices: []int{6}},
			'Z': {Params: 0},
		},
	}
}

// Lookup accepts either case. Unknown letters report false and a zero
// descriptor.
func (t *CommandTable) Lookup(letter rune) (Command, bool) {
	c, ok := t.commands[unicode.ToUpper(letter)]
	if !ok {
		return Command{}, false
	}
	return Command{Params: c.Params, YIndices: slices.Clone(c.YIndices)}, true
}
