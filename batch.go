package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"materialize/envelope"
	"materialize/host"
	"materialize/naming"
	"materialize/pathdata"
	"materialize/report"
)

func isURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// Batch converts a list of icons into files under outDir.
type Batch struct {
	conv    *envelope.Converter
	scanner *pathdata.Scanner
	namer   naming.Namer
	outDir  string
}

func NewBatch(outDir string, namer naming.Namer) *Batch {
	if namer == nil {
		namer = naming.Identity{}
	}
	return &Batch{
		conv:    envelope.NewConverter(),
		scanner: pathdata.NewPathScanner(),
		namer:   namer,
		outDir:  outDir,
	}
}

// Run converts every node, logging failures and carrying on with the rest.
func (b *Batch) Run(ctx context.Context, nodes []host.Node) (report.Stats, error) {
	stats := report.Stats{}
	if err := os.MkdirAll(b.outDir, 0o755); err != nil {
		return stats, err
	}

	for _, node := range nodes {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		msg := host.Process(ctx, []host.Node{node}, b.conv)
		if msg.IsError() {
			log.Printf("error converting %v: %v", node.Name(), msg.Message)
			stats.Failed++
			continue
		}

		name, err := b.namer.Name(msg.Name)
		if err != nil {
			log.Println(err)
			stats.Failed++
			continue
		}

		out := filepath.Join(b.outDir, name+".svg")
		if err := os.WriteFile(out, []byte(msg.SVG+"\n"), 0o644); err != nil {
			log.Printf("error writing %v: %v", out, err)
			stats.Failed++
			continue
		}

		for _, d := range envelope.ExtractPathData(msg.SVG) {
			stats.PathTokens += len(b.scanner.Scan(d))
		}
		stats.Converted++
		log.Printf("Done: %v", out)
	}

	return stats, nil
}
