package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"materialize/host"
	"materialize/naming"
)

const (
	lineIcon  = `<svg width="24" height="24" viewBox="0 0 24 24"><path d="M0 0L24 24"/></svg>`
	emptyIcon = `<svg width="24" height="24" viewBox="0 0 24 24"></svg>`
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte(`
out_dir: out
naming:
  script: names.lua
  function: material_name
metrics:
  series: 'icons{team="design"}'
icons:
  - input: figma/home.svg
    name: home
  - input: /abs/star.svg
  - input: https://example.com/a.svg
`), 0o644))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "out"), cfg.OutDir)
	require.Equal(t, filepath.Join(dir, "names.lua"), cfg.Naming.Script)
	require.Equal(t, "material_name", cfg.Naming.Function)
	require.Equal(t, `icons{team="design"}`, cfg.Metrics.Series)
	require.Len(t, cfg.Icons, 3)
	require.Equal(t, ConfigIcon{Input: filepath.Join(dir, "figma/home.svg"), Name: "home"}, cfg.Icons[0])
	require.Equal(t, "/abs/star.svg", cfg.Icons[1].Input)
	require.Equal(t, "https://example.com/a.svg", cfg.Icons[2].Input)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(empty, []byte("out_dir: x\n"), 0o644))
	_, err = LoadConfig(empty)
	require.Error(t, err)

	noInput := filepath.Join(dir, "noinput.yml")
	require.NoError(t, os.WriteFile(noInput, []byte("icons:\n  - name: x\n"), 0o644))
	_, err = LoadConfig(noInput)
	require.EqualError(t, err, "icon 0 has no input")
}

type BatchSuite struct {
	suite.Suite
	ctx context.Context
	in  string
	out string
}

func (s *BatchSuite) SetupTest() {
	s.ctx = context.Background()
	s.in = s.T().TempDir()
	s.out = filepath.Join(s.T().TempDir(), "icons")
}

func (s *BatchSuite) write(name, content string) host.Node {
	p := filepath.Join(s.in, name)
	require.NoError(s.T(), os.WriteFile(p, []byte(content), 0o644))
	return host.NodeFor(p, "")
}

func (s *BatchSuite) TestConvertsAndCounts() {
	nodes := []host.Node{
		s.write("line.svg", lineIcon),
		s.write("empty.svg", emptyIcon),
		host.NodeFor(filepath.Join(s.in, "missing.svg"), ""),
	}

	stats, err := NewBatch(s.out, nil).Run(s.ctx, nodes)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, stats.Converted)
	require.Equal(s.T(), 2, stats.Failed)
	// M 0 -960 L 960 0
	require.Equal(s.T(), 6, stats.PathTokens)

	data, err := os.ReadFile(filepath.Join(s.out, "line.svg"))
	require.NoError(s.T(), err)
	require.Contains(s.T(), string(data), `<path d="M0-960L960 0"/></svg>`+"\n")
}

func (s *BatchSuite) TestLuaNaming() {
	namer, err := naming.NewLuaNamerString(`function n(name) return "ic_" .. name end`, "n")
	require.NoError(s.T(), err)

	stats, err := NewBatch(s.out, namer).Run(s.ctx, []host.Node{s.write("star.svg", lineIcon)})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, stats.Converted)
	require.FileExists(s.T(), filepath.Join(s.out, "ic_star.svg"))
}

func (s *BatchSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := NewBatch(s.out, nil).Run(ctx, []host.Node{s.write("line.svg", lineIcon)})
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestBatchSuite(t *testing.T) {
	suite.Run(t, new(BatchSuite))
}

func TestConvertOne(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")
	out := filepath.Join(dir, "out.svg")
	require.NoError(t, os.WriteFile(in, []byte(lineIcon), 0o644))

	require.NoError(t, convertOne(context.Background(), in, out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" height="24px" viewBox="0 -960 960 960" width="24px" fill="#1f1f1f"><path d="M0-960L960 0"/></svg>`+"\n", string(data))

	empty := filepath.Join(dir, "empty.svg")
	require.NoError(t, os.WriteFile(empty, []byte(emptyIcon), 0o644))
	require.EqualError(t, convertOne(context.Background(), empty, out), "no <path> elements found")
}
