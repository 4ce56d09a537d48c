// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/netsim/simulation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "text", "txt", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// GraphFileName names the GML file of a run:
//
//	<out>_n=<n>_p=<p>.gml    Erdős–Rényi
//	<out>_t=<t>_m=<m>.gml    Barabási–Albert
//	<out>_<model>_n=<n>.gml  anything else
func GraphFileName(out string, m simulation.Model) string {
	switch mm := m.(type) {
	case *simulation.ErdosRenyiModel:
		p, _ := mm.Probability()
		return fmt.Sprintf("%s_n=%d_p=%s.gml", out, mm.N, strconv.FormatFloat(p, 'g', -1, 64))
	case *simulation.BarabasiAlbertModel:
		return fmt.Sprintf("%s_t=%d_m=%d.gml", out, mm.T, mm.M)
	}
	return fmt.Sprintf("%s_%s_n=%d.gml", out, m.Name(), m.NodeCount())
}

// StatsFileName names the report file shared by every run of a batch.
func StatsFileName(out string, f Format) string {
	if f == FormatYAML {
		return out + "_stats.yaml"
	}
	return out + "_stats.txt"
}

// Sink persists a batch of results under a common output prefix: one GML
// file per run and a single report file that every run appends to. A Sink
// is not safe for concurrent use.
type Sink struct {
	out     string
	format  Format
	samples bool
	logger  *zap.Logger

	stats *os.File
	enc   *yaml.Encoder
}

// SinkOption customizes a Sink.
type SinkOption func(*Sink)

// WithSinkLogger logs every file written.
func WithSinkLogger(l *zap.Logger) SinkOption {
	if l == nil {
		panic("export: WithSinkLogger(nil)")
	}
	return func(s *Sink) { s.logger = l }
}

// WithSamples includes per-iteration samples in YAML reports.
func WithSamples() SinkOption {
	return func(s *Sink) { s.samples = true }
}

// NewSink creates (or truncates) the report file for prefix out.
func NewSink(out string, format Format, opts ...SinkOption) (*Sink, error) {
	if format != FormatText && format != FormatYAML {
		return nil, fmt.Errorf("NewSink: %q: %w", format, ErrUnknownFormat)
	}
	s := &Sink{out: out, format: format, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	f, err := os.Create(StatsFileName(out, format))
	if err != nil {
		return nil, fmt.Errorf("NewSink: %w", err)
	}
	s.stats = f
	if format == FormatYAML {
		s.enc = yaml.NewEncoder(f)
		s.enc.SetIndent(2)
	}
	return s, nil
}

// Write saves res.LastGraph as GML and appends res to the report. It
// returns the GML path.
func (s *Sink) Write(res *simulation.Result) (string, error) {
	if res == nil || res.Model == nil {
		return "", ErrNilResult
	}
	path := GraphFileName(s.out, res.Model)
	if err := SaveGML(path, res.LastGraph); err != nil {
		return "", fmt.Errorf("Sink.Write: %w", err)
	}

	var err error
	switch s.format {
	case FormatYAML:
		var doc ReportDocument
		if doc, err = NewReportDocument(res, s.samples); err == nil {
			err = s.enc.Encode(doc)
		}
	default:
		err = WriteReport(s.stats, res)
	}
	if err != nil {
		return "", fmt.Errorf("Sink.Write: %w", err)
	}
	s.logger.Info("run exported",
		zap.String("graph", path),
		zap.String("report", s.stats.Name()),
	)
	return path, nil
}

// Close flushes and closes the report file.
func (s *Sink) Close() error {
	var err error
	if s.enc != nil {
		err = s.enc.Close()
	}
	if cerr := s.stats.Close(); err == nil {
		err = cerr
	}
	return err
}
