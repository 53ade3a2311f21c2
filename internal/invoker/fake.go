// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package invoker

import (
	"context"
	"slices"
	"sync"

	log "github.com/sirupsen/logrus"
)

type FakeInvoker struct {
	Output         Output
	RunReturnError error

	mu    sync.Mutex
	calls [][]string
}

func NewFakeInvoker(stdout, stderr string) *FakeInvoker {
	return &FakeInvoker{Output: Output{Stdout: stdout, Stderr: stderr}}
}

func (f *FakeInvoker) Run(_ context.Context, args []string) (Output, error) {
	log.Debugf("running %v (fake)", args)
	f.mu.Lock()
	f.calls = append(f.calls, slices.Clone(args))
	f.mu.Unlock()

	if f.RunReturnError != nil {
		return Output{}, f.RunReturnError
	}
	return f.Output, nil
}

// Calls returns the argument vectors of every Run so far.
func (f *FakeInvoker) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}
