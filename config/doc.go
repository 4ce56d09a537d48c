// SPDX-License-Identifier: MIT

// Package config holds the batch description for the netsim CLI: which
// model to simulate, over which parameter grid, how many times, and where
// to write the results. A Config comes from Default, a YAML file (Load) or
// command-line flags, and is checked by Validate before Plans expands it
// into runnable models.
package config
