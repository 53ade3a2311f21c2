// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"

	pnerrors "github.com/sapcc/pnswitch/internal/errors"
	"github.com/sapcc/pnswitch/internal/netvisor"
)

// toggles turns --x / --no-x flag pairs into tri-states and remembers
// pairs that were both given.
type toggles struct {
	errs []error
}

func (t *toggles) get(flag string, on, off bool) netvisor.TriState {
	switch {
	case on && off:
		t.errs = append(t.errs, fmt.Errorf("%w: --%s and --no-%s are mutually exclusive", pnerrors.ErrValidation, flag, flag))
		return netvisor.Unset
	case on:
		return netvisor.True
	case off:
		return netvisor.False
	default:
		return netvisor.Unset
	}
}

func (t *toggles) err() error {
	return errors.Join(t.errs...)
}

// optional treats an empty flag value as not given.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
