// SPDX-License-Identifier: MIT

// Package: netsim/builder
//
// regime.go - named Erdős–Rényi regimes and their edge probabilities.
//
//	SubCritical    p = 0.6/n          (mean degree below 1, small tree components)
//	Critical       p = 1/n            (giant component threshold)
//	SuperCritical  p = log10(n)/n     (giant component, not yet connected)
//	Connected      p = 1.6·ln(n)/n    (above the connectivity threshold ln(n)/n)

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Regime names a G(n,p) regime relative to the critical probability 1/n.
type Regime int

// Regimes, in increasing order of p. The numeric values are stable and
// accepted by ParseRegime.
const (
	SubCritical Regime = iota
	Critical
	SuperCritical
	Connected
)

// Regime multipliers.
const (
	subCriticalFactor = 0.6
	connectedFactor   = 1.6
)

// AllRegimes lists every regime in increasing order of p.
func AllRegimes() []Regime {
	return []Regime{SubCritical, Critical, SuperCritical, Connected}
}

var regimeNames = map[Regime]string{
	SubCritical:   "sub-critical",
	Critical:      "critical",
	SuperCritical: "super-critical",
	Connected:     "connected",
}

// String returns the canonical hyphenated name of r.
func (r Regime) String() string {
	if s, ok := regimeNames[r]; ok {
		return s
	}
	return "Regime(" + strconv.Itoa(int(r)) + ")"
}

// ParseRegime accepts canonical names, their unhyphenated forms
// ("subcritical"), short forms ("sub", "super") and numeric values "0".."3".
func ParseRegime(s string) (Regime, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "subcritical", "sub", "0":
		return SubCritical, nil
	case "critical", "crit", "1":
		return Critical, nil
	case "supercritical", "super", "2":
		return SuperCritical, nil
	case "connected", "conn", "3":
		return Connected, nil
	}

	return 0, fmt.Errorf("ParseRegime(%q): %w", s, ErrUnknownRegime)
}

// RegimeToProbability maps a regime to its edge probability for n nodes.
// The result always lies in [0,1] for n ≥ 1.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrUnknownRegime for an undefined regime value.
func RegimeToProbability(regime Regime, n int) (float64, error) {
	if n < MinErdosRenyiNodes {
		return 0, fmt.Errorf("RegimeToProbability: n=%d: %w", n, ErrTooFewVertices)
	}
	fn := float64(n)
	switch regime {
	case SubCritical:
		return subCriticalFactor / fn, nil
	case Critical:
		return 1 / fn, nil
	case SuperCritical:
		return math.Log10(fn) / fn, nil
	case Connected:
		return connectedFactor * math.Log(fn) / fn, nil
	}

	return 0, fmt.Errorf("RegimeToProbability: %v: %w", regime, ErrUnknownRegime)
}
