package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"go.buf.build/protocolbuffers/go/prometheus/prometheus"
	"golang.org/x/exp/slices"
)

const DefaultMetricName = "icon_conversions"

// Stats summarizes one batch run.
type Stats struct {
	Converted  int
	Failed     int
	PathTokens int
}

// WriteRequest turns stats into one gauge per field, each carrying the
// selector labels. Label sets are sorted by name as remote write requires.
func (s Stats) WriteRequest(selector *Selector, now time.Time) *prometheus.WriteRequest {
	if selector == nil {
		selector = &Selector{Name: DefaultMetricName}
	}

	gauges := []struct {
		suffix string
		help   string
		value  int
	}{
		{"converted", "Icons converted successfully.", s.Converted},
		{"failed", "Icons that could not be converted.", s.Failed},
		{"path_tokens", "Tokens in all produced path data.", s.PathTokens},
	}

	wr := &prometheus.WriteRequest{}
	for _, g := range gauges {
		name := selector.Name + "_" + g.suffix
		labels := []*prometheus.Label{{Name: "__name__", Value: name}}
		for _, l := range selector.Labels {
			labels = append(labels, &prometheus.Label{Name: l.Name, Value: l.Value})
		}
		slices.SortFunc(labels, func(a, b *prometheus.Label) bool {
			return a.Name < b.Name
		})

		wr.Timeseries = append(wr.Timeseries, &prometheus.TimeSeries{
			Labels: labels,
			Samples: []*prometheus.Sample{{
				Value:     float64(g.value),
				Timestamp: now.UnixMilli(),
			}},
		})
		wr.Metadata = append(wr.Metadata, &prometheus.MetricMetadata{
			Type:             prometheus.MetricMetadata_GAUGE,
			MetricFamilyName: name,
			Help:             g.help,
		})
	}
	return wr
}

// Writer pushes write requests to a Prometheus remote write endpoint.
type Writer struct {
	url        *url.URL
	httpClient http.Client
}

// NewWriter joins /api/v1/write onto the path of base.
func NewWriter(base string) (*Writer, error) {
	parsedUrl, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	if parsedUrl.Scheme == "" || parsedUrl.Host == "" {
		return nil, errors.New(fmt.Sprintf("invalid prometheus url: %v", base))
	}
	parsedUrl.Path = path.Join(parsedUrl.Path, "/api/v1/write")

	return &Writer{
		url: parsedUrl,
		httpClient: http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (w *Writer) URL() string {
	return w.url.String()
}

func (w *Writer) Send(ctx context.Context, wr *prometheus.WriteRequest) error {
	data, err := proto.Marshal(wr)
	if err != nil {
		return err
	}
	encoded := snappy.Encode(nil, data)

	req, err := http.NewRequestWithContext(ctx, "POST", w.url.String(), bytes.NewReader(encoded))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-protobuf")
	req.Header.Set("Content-Encoding", "snappy")
	req.Header.Set("X-Prometheus-Remote-Write-Version", "0.1.0")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == 400 {
			// possibly duplicate samples, nothing to retry
			log.Println("invalid data detected, ignoring it")
			return nil
		}

		return errors.New(fmt.Sprintf("unexpected remote write status code: %v", resp.StatusCode))
	}

	return nil
}
