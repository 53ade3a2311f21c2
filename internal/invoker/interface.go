// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package invoker

import (
	"context"
)

// Output is the fully buffered result of one cli process.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

type Invoker interface {
	// Run executes args[0] with the remaining arguments and blocks until it exits.
	// A non-zero exit status is not an error.
	Run(ctx context.Context, args []string) (Output, error)
}
