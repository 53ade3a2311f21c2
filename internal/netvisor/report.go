// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package netvisor

import (
	"strings"

	"github.com/sapcc/pnswitch/internal/invoker"
)

// Report is the structured outcome of one cli invocation.
type Report struct {
	Switch  string  `json:"switch,omitempty" yaml:"switch,omitempty"`
	Command string  `json:"command" yaml:"command"`
	Stdout  *string `json:"stdout,omitempty" yaml:"stdout,omitempty"`
	Stderr  *string `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	Changed bool    `json:"changed" yaml:"changed"`
	RC      *int    `json:"rc,omitempty" yaml:"rc,omitempty"`
}

// Failed is true when the cli wrote to its error stream.
func (r Report) Failed() bool {
	return r.Stderr != nil
}

// NewReport derives the verdict from the error stream alone: any stderr text
// is a failure, whatever the exit status was. VLAG reports carry an rc field.
func NewReport(family Family, cmd Command, out invoker.Output) Report {
	report := Report{Command: cmd.String()}
	rc := 0

	if stderr := strings.TrimRight(out.Stderr, "\r\n"); stderr != "" {
		report.Stderr = &stderr
		report.Changed = false
		rc = 1
	} else {
		stdout := strings.TrimRight(out.Stdout, "\r\n")
		report.Stdout = &stdout
		report.Changed = true
	}

	if family == FamilyVLAG {
		report.RC = &rc
	}
	return report
}
