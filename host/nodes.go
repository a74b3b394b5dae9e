package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileNode exports an SVG file from disk.
type FileNode struct {
	Path string
	// Label overrides the name derived from Path.
	Label string
}

func (n *FileNode) Name() string {
	if n.Label != "" {
		return n.Label
	}
	base := filepath.Base(n.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (n *FileNode) ExportSVG(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return nil, fmt.Errorf("export %v: %w", n.Path, err)
	}
	return data, nil
}

// URLNode exports an SVG served over http.
type URLNode struct {
	URL   string
	Label string
}

func (n *URLNode) Name() string {
	if n.Label != "" {
		return n.Label
	}
	base := n.URL[strings.LastIndex(n.URL, "/")+1:]
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (n *URLNode) ExportSVG(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", n.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "image/svg+xml")

	httpClient := http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(fmt.Sprintf("unexpected export status code: %v", resp.StatusCode))
	}

	return io.ReadAll(resp.Body)
}

// NodeFor picks a URLNode for http(s) locations and a FileNode otherwise.
func NodeFor(location, label string) Node {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &URLNode{URL: location, Label: label}
	}
	return &FileNode{Path: location, Label: label}
}
