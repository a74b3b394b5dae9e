// Package host is the boundary to whatever owns the graphical selection: it
// exports a node to SVG bytes, decodes them and hands the text to the
// converter, reporting back a result or a short error message.
package host

import (
	"context"
	"errors"
	"unicode/utf8"
)

var (
	ErrEmptySelection    = errors.New("Select an icon frame first")
	ErrMultipleSelection = errors.New("Select only one node")
)

const (
	MessageTypeResult = "result"
	MessageTypeError  = "error"
)

// Node is a selectable graphic that can export itself as an SVG document.
type Node interface {
	Name() string
	ExportSVG(ctx context.Context) ([]byte, error)
}

// Converter turns SVG text into the output document.
type Converter interface {
	Convert(svg string) (string, error)
}

// Message is what the host shows to the user: either the converted SVG with
// the node name or an error message.
type Message struct {
	Type    string `json:"type"`
	SVG     string `json:"svg,omitempty"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
}

func (m Message) IsError() bool {
	return m.Type == MessageTypeError
}

func errorMessage(err error) Message {
	msg := err.Error()
	if msg == "" {
		msg = "Export failed"
	}
	return Message{
		Type:    MessageTypeError,
		Message: msg,
	}
}

// Decode turns exported bytes into text. Valid UTF-8 is kept as is, anything
// else is read byte per character.
func Decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

// Process exports the single selected node and converts it.
func Process(ctx context.Context, selection []Node, conv Converter) Message {
	if len(selection) == 0 {
		return errorMessage(ErrEmptySelection)
	}
	if len(selection) > 1 {
		return errorMessage(ErrMultipleSelection)
	}

	node := selection[0]
	data, err := node.ExportSVG(ctx)
	if err != nil {
		return errorMessage(err)
	}

	result, err := conv.Convert(Decode(data))
	if err != nil {
		return errorMessage(err)
	}

	return Message{
		Type: MessageTypeResult,
		SVG:  result,
		Name: node.Name(),
	}
}
