// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package netvisor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TriState is a boolean switch option that may also be left untouched.
// Unset renders nothing, True renders the option token and False its negation.
type TriState int

const (
	Unset TriState = iota
	True
	False
)

func Bool(b bool) TriState {
	if b {
		return True
	}
	return False
}

func (t TriState) IsSet() bool {
	return t == True || t == False
}

func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

func (t *TriState) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*t = Unset
		return nil
	}

	var b bool
	if err := node.Decode(&b); err != nil {
		return fmt.Errorf("line %d: expected boolean, got %q", node.Line, node.Value)
	}
	*t = Bool(b)
	return nil
}

func (t TriState) MarshalYAML() (any, error) {
	switch t {
	case True:
		return true, nil
	case False:
		return false, nil
	default:
		return nil, nil
	}
}

func (t TriState) IsZero() bool {
	return t == Unset
}
