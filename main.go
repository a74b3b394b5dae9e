package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"materialize/envelope"
	"materialize/host"
	"materialize/naming"
	"materialize/report"
)

var (
	prometheusUrl *string
	configFile    *string
	outDir        *string
)

func init() {
	prometheusUrl = flag.String("prometheus.url", "", "prometheus http url, conversion stats are pushed when set")
	configFile = flag.String("config.file", DefaultConfigFile, "batch config file location")
	outDir = flag.String("out.dir", "", "output directory, overrides out_dir from the config file")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] input.svg [output.svg]\n       %v [flags] (batch mode, reads -config.file)\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
}

// convertOne mirrors the single file usage: print to stdout or write output.
func convertOne(ctx context.Context, input, output string) error {
	msg := host.Process(ctx, []host.Node{host.NodeFor(input, "")}, envelope.NewConverter())
	if msg.IsError() {
		return errors.New(msg.Message)
	}

	if output == "" {
		fmt.Println(msg.SVG)
		return nil
	}

	if err := os.WriteFile(output, []byte(msg.SVG+"\n"), 0o644); err != nil {
		return err
	}
	fmt.Printf("Done: %v\n", output)
	return nil
}

func namerFor(cfg ConfigNaming) (naming.Namer, error) {
	if cfg.Script == "" {
		return naming.Identity{}, nil
	}
	return naming.NewLuaNamerFile(cfg.Script, cfg.Function)
}

func runBatch(ctx context.Context, cfg *ConfigRoot) error {
	var selector *report.Selector
	if cfg.Metrics.Series != "" {
		sel, err := report.ParseSelector(cfg.Metrics.Series)
		if err != nil {
			return fmt.Errorf("metrics series: %w", err)
		}
		selector = sel
	}

	var writer *report.Writer
	if *prometheusUrl != "" {
		w, err := report.NewWriter(*prometheusUrl)
		if err != nil {
			return err
		}
		writer = w
	}

	namer, err := namerFor(cfg.Naming)
	if err != nil {
		return err
	}

	dir := cfg.OutDir
	if *outDir != "" {
		dir = *outDir
	}

	var nodes []host.Node
	for _, icon := range cfg.Icons {
		nodes = append(nodes, host.NodeFor(icon.Input, icon.Name))
	}

	stats, err := NewBatch(dir, namer).Run(ctx, nodes)
	if err != nil {
		return err
	}
	log.Printf("converted %v icons, %v failed", stats.Converted, stats.Failed)

	if writer != nil {
		err = writer.Send(ctx, stats.WriteRequest(selector, time.Now()))
		if err != nil {
			return fmt.Errorf("error writing stats to %v: %w", writer.URL(), err)
		}
		log.Println("done writing conversion stats")
	}
	return nil
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	args := flag.Args()
	if len(args) > 2 {
		flag.Usage()
		os.Exit(1)
	}

	if len(args) > 0 {
		output := ""
		if len(args) == 2 {
			output = args[1]
		}
		if err := convertOne(ctx, args[0], output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if configFile == nil || *configFile == "" {
		fmt.Println("missing value: config.file")
		os.Exit(1)
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			flag.Usage()
			os.Exit(1)
		}
		log.Fatalf("error loading config: %v", err)
	}

	if err := runBatch(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
