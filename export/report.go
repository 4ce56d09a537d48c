// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"sort"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/netsim/metrics"
	"github.com/katalvlaran/netsim/simulation"
	"gopkg.in/yaml.v3"
)

const reportRule = "----------------------------------------------------\n"

// WriteReport writes the averaged statistics of res as a human-readable
// block:
//
//	----------------------------------------------------
//	Nodes = 500, Edges = 148.3, P = 0.0012, Sims = 10
//
//	Hub degree: 4.1
//	<K>: 0.5932
//	...
//	----------------------------------------------------
func WriteReport(w io.Writer, res *simulation.Result) error {
	if res == nil || res.Model == nil {
		return ErrNilResult
	}
	var b strings.Builder
	st := res.Stats
	b.WriteString(reportRule)
	fmt.Fprintf(&b, "Nodes = %d, Edges = %s, %s, Sims = %d\n\n",
		res.Model.NodeCount(), num(st.Edges), headline(res.Model), res.Sims)
	fmt.Fprintf(&b, "Hub degree: %s\n", num(st.HubDegree))
	fmt.Fprintf(&b, "<K>: %s\n", num(st.MeanDegree))
	fmt.Fprintf(&b, "Density: %s\n", num(st.Density))
	fmt.Fprintf(&b, "Distance: %s\n", num(st.MeanDistance))
	fmt.Fprintf(&b, "Cluster coefficient: %s\n", num(st.Clustering))
	fmt.Fprintf(&b, "Connected components: %s\n", num(st.Components))
	b.WriteString(reportRule)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}
	return nil
}

// headline renders the model-specific part of the report title.
func headline(m simulation.Model) string {
	switch mm := m.(type) {
	case *simulation.ErdosRenyiModel:
		p, _ := mm.Probability()
		return "P = " + num(p)
	case *simulation.BarabasiAlbertModel:
		return fmt.Sprintf("M = %d, T = %d", mm.M, mm.T)
	}
	params := m.Params()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := []string{"Model = " + m.Name()}
	for _, k := range keys {
		parts = append(parts, strings.ToUpper(k)+" = "+params[k])
	}
	return strings.Join(parts, ", ")
}

// num formats a float in its shortest round-trip form. Infinities and NaN
// print as inf, -inf and nan.
func num(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "nan"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// ReportDocument is the YAML form of a run.
type ReportDocument struct {
	RunID   string                    `yaml:"run_id"`
	Model   string                    `yaml:"model"`
	Params  map[string]string         `yaml:"params"`
	Nodes   int                       `yaml:"nodes"`
	Sims    int                       `yaml:"sims"`
	Seed    int64                     `yaml:"seed"`
	Policy  string                    `yaml:"distance_policy"`
	Elapsed string                    `yaml:"elapsed"`
	Stats   metrics.RunningStatistics `yaml:"stats"`
	Spread  metrics.Spread            `yaml:"spread"`
	Samples []metrics.Sample          `yaml:"samples,omitempty"`
}

// NewReportDocument converts res. Per-iteration samples are included only
// when withSamples is set.
func NewReportDocument(res *simulation.Result, withSamples bool) (ReportDocument, error) {
	if res == nil || res.Model == nil {
		return ReportDocument{}, ErrNilResult
	}
	doc := ReportDocument{
		RunID:   res.RunID.String(),
		Model:   res.Model.Name(),
		Params:  res.Model.Params(),
		Nodes:   res.Model.NodeCount(),
		Sims:    res.Sims,
		Seed:    res.Seed,
		Policy:  res.Policy.String(),
		Elapsed: res.Elapsed.String(),
		Stats:   res.Stats,
		Spread:  res.Spread,
	}
	if withSamples {
		doc.Samples = res.Samples
	}
	return doc, nil
}

// WriteReportYAML writes res as a single YAML document.
func WriteReportYAML(w io.Writer, res *simulation.Result, withSamples bool) error {
	doc, err := NewReportDocument(res, withSamples)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteReportYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteReportYAML: %w", err)
	}
	return nil
}
