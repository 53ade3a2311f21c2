// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package invoker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	log "github.com/sirupsen/logrus"

	pnerrors "github.com/sapcc/pnswitch/internal/errors"
)

// Exec runs the cli as a child process without a shell in between.
type Exec struct{}

func NewExec() *Exec {
	return &Exec{}
}

func (e *Exec) Run(ctx context.Context, args []string) (Output, error) {
	if len(args) == 0 {
		return Output{}, pnerrors.ErrMissingExecutable
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Output{}, fmt.Errorf("%w: %s: %w", pnerrors.ErrLaunch, args[0], err)
	}
	log.Debugf("Started %s with PID %d", args[0], cmd.Process.Pid)

	err := cmd.Wait()
	out := Output{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	if ctx.Err() != nil {
		return out, ctx.Err()
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return out, err
	}
	return out, nil
}
