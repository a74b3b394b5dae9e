package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

const (
	DefaultConfigFile = "./config.yml"
	DefaultOutDir     = "."
)

type ConfigIcon struct {
	Input string `json:"input"`
	Name  string `json:"name"`
}

type ConfigNaming struct {
	Script   string `json:"script"`
	Function string `json:"function"`
}

type ConfigMetrics struct {
	Series string `json:"series"`
}

type ConfigRoot struct {
	OutDir  string        `json:"out_dir"`
	Naming  ConfigNaming  `json:"naming"`
	Metrics ConfigMetrics `json:"metrics"`
	Icons   []ConfigIcon  `json:"icons"`
}

// LoadConfig reads a batch config. Relative local paths are resolved against
// the directory of the config file.
func LoadConfig(file string) (*ConfigRoot, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	root := &ConfigRoot{}
	if err := yaml.Unmarshal(raw, root); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", file, err)
	}
	if len(root.Icons) == 0 {
		return nil, errors.New(fmt.Sprintf("no icons listed in %v", file))
	}

	base := filepath.Dir(file)
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) || isURL(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	if root.OutDir == "" {
		root.OutDir = DefaultOutDir
	}
	root.OutDir = resolve(root.OutDir)
	root.Naming.Script = resolve(root.Naming.Script)
	for i, icon := range root.Icons {
		if icon.Input == "" {
			return nil, errors.New(fmt.Sprintf("icon %v has no input", i))
		}
		root.Icons[i].Input = resolve(icon.Input)
	}
	return root, nil
}
