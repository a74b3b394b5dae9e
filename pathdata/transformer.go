package pathdata

import (
	"math"
	"strconv"
	"unicode"

	"golang.org/x/exp/slices"
)

const (
	// MaterialSize is the edge of the target coordinate space.
	MaterialSize = 960
	// MaterialYOffset shifts the origin to match viewBox "0 -960 960 960".
	MaterialYOffset = -960
)

// arc parameters that are an angle and two flags rather than coordinates
var arcUnscaled = []int{2, 3, 4}

// Context holds the per conversion scale and y offset.
type Context struct {
	Scale   float64
	YOffset float64
}

// MaterialContext returns the context mapping a source of the given width
// onto the 960 unit grid.
func MaterialContext(width float64) Context {
	return Context{
		Scale:   MaterialSize / width,
		YOffset: MaterialYOffset,
	}
}

type state int

const (
	stateScanning state = iota
	stateCollecting
)

// Transformer rewrites a token stream, rescaling every coordinate.
type Transformer struct {
	index    int
	tokens   TokenList
	commands *CommandTable
	ctx      Context

	state    state
	letter   rune
	relative bool
	active   Command
}

func NewTransformer(commands *CommandTable, ctx Context) *Transformer {
	if commands == nil {
		commands = NewCommandTable()
	}
	return &Transformer{
		commands: commands,
		ctx:      ctx,
	}
}

func (t *Transformer) reset(tokens TokenList) {
	t.index = 0
	t.tokens = tokens
	t.state = stateScanning
}

func (t *Transformer) hasTokens() bool {
	return t.index < len(t.tokens)
}

func (t *Transformer) consume() {
	t.index = t.index + 1
}

func (t *Transformer) peek() *Token {
	return t.tokens.at(t.index)
}

// numeral applies the scale and offset rules to parameter j of the active
// command.
func (t *Transformer) numeral(j int, value float64) string {
	var out float64
	upper := unicode.ToUpper(t.letter)
	switch {
	case upper == 'A' && slices.Contains(arcUnscaled, j):
		out = value
	case t.relative:
		out = value * t.ctx.Scale
	case t.active.IsY(j):
		out = value*t.ctx.Scale + t.ctx.YOffset
	default:
		out = value * t.ctx.Scale
	}
	return round(out)
}

// round is half away from zero and never yields "-0".
func round(v float64) string {
	r := math.Round(v)
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// command handles a letter token and decides the next state.
func (t *Transformer) command(token *Token, out []string) []string {
	t.consume()
	out = append(out, token.StringVal)

	t.letter = []rune(token.StringVal)[0]
	t.relative = unicode.IsLower(t.letter) && t.letter != 'z'

	if unicode.ToUpper(t.letter) == 'Z' {
		t.state = stateScanning
		return out
	}

	cmd, ok := t.commands.Lookup(t.letter)
	if !ok || cmd.Params == 0 {
		t.state = stateScanning
		return out
	}
	t.active = cmd
	t.state = stateCollecting
	return out
}

// group collects one full parameter group. A group cut short by a letter or
// the end of input is dropped.
func (t *Transformer) group(out []string) []string {
	group := make([]string, 0, t.active.Params)
	for j := 0; j < t.active.Params; j++ {
		token := t.peek()
		if token == nil || token.IsCommand() {
			t.state = stateScanning
			return out
		}
		t.consume()
		group = append(group, t.numeral(j, token.FloatVal))
	}
	return append(out, group...)
}

// Transform runs the state machine over tokens and returns the rewritten
// sequence. Numerals outside a parameter taking command are discarded.
func (t *Transformer) Transform(tokens TokenList) []string {
	t.reset(tokens)
	var out []string

	for t.hasTokens() {
		token := t.peek()
		switch t.state {
		case stateScanning:
			if token.IsCommand() {
				out = t.command(token, out)
			} else {
				t.consume()
			}
		case stateCollecting:
			if token.IsCommand() {
				t.state = stateScanning
				continue
			}
			out = t.group(out)
		}
	}

	return out
}
