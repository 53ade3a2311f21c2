// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package netvisor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sapcc/pnswitch/internal/errors"
)

type Family string

const (
	FamilyTrunk Family = "trunk"
	FamilyVLAG  Family = "vlag"
)

var Families = []Family{FamilyTrunk, FamilyVLAG}

type Action string

const (
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
	ActionModify Action = "modify"
)

var Actions = []Action{ActionCreate, ActionDelete, ActionModify}

// Command returns the cli operation token, e.g. trunk-create.
func (f Family) Command(a Action) string {
	return string(f) + "-" + string(a)
}

// ParseCommand splits a cli operation token like vlag-modify into family and action.
func ParseCommand(command string) (Family, Action, error) {
	idx := strings.LastIndex(command, "-")
	if idx < 0 {
		return "", "", fmt.Errorf("%w: %q", errors.ErrUnknownCommand, command)
	}
	family, action := Family(command[:idx]), Action(command[idx+1:])
	if !slices.Contains(Families, family) {
		return "", "", fmt.Errorf("%w: %q", errors.ErrUnknownFamily, command[:idx])
	}
	if !slices.Contains(Actions, action) {
		return "", "", fmt.Errorf("%w: %q", errors.ErrUnknownCommand, command)
	}
	return family, action, nil
}

// Params is the optional field set of one object family.
type Params interface {
	Family() Family
	// arguments lists every optional field in cli rendering order.
	arguments() []argument
	// required lists the optional fields mandatory for the given action.
	required(Action) []string
}

// NewParams returns an empty parameter set for the family.
func NewParams(f Family) (Params, error) {
	switch f {
	case FamilyTrunk:
		return &TrunkParams{}, nil
	case FamilyVLAG:
		return &VLAGParams{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownFamily, f)
	}
}

// LocalSwitch selects the switch the cli runs on instead of a fabric peer.
const LocalSwitch = "local"

var choices = map[string][]string{
	"speed":           {"disable", "10m", "100m", "1g", "2.5g", "10g", "40g"},
	"lacp_mode":       {"off", "passive", "active"},
	"lacp_timeout":    {"slow", "fast"},
	"lacp_fallback":   {"bundle", "individual"},
	"mode":            {"active-active", "active-standby"},
	"failover_action": {"move", "ignore"},
}

// Request describes one create, delete or modify call for a trunk or VLAG.
type Request struct {
	Action Action
	Name   string
	Switch string
	Params Params
}

func (r Request) Family() Family {
	if r.Params == nil {
		return ""
	}
	return r.Params.Family()
}

func (r Request) Command() string {
	return r.Family().Command(r.Action)
}

// Validate checks required fields for the action and the value domain of
// enumerated fields. Every problem found is reported in one error.
func (r Request) Validate() error {
	if r.Params == nil {
		return fmt.Errorf("%w: request has no %s parameters", errors.ErrValidation, r.Action)
	}
	if !slices.Contains(Actions, r.Action) {
		return fmt.Errorf("%w: %w: %q", errors.ErrValidation, errors.ErrUnknownCommand, r.Action)
	}

	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}

	args := r.Params.arguments()
	present := make(map[string]bool, len(args))
	for _, arg := range args {
		present[arg.Key()] = arg.Present()
	}
	for _, key := range r.Params.required(r.Action) {
		if !present[key] {
			missing = append(missing, key)
		}
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "missing required field(s) "+strings.Join(missing, ", "))
	}
	for _, arg := range args {
		allowed, ok := choices[arg.Key()]
		if !ok || !arg.Present() {
			continue
		}
		var value string
		switch a := arg.(type) {
		case stringArg:
			value = *a.value
		case affixArg:
			value = *a.value
		default:
			continue
		}
		if !slices.Contains(allowed, value) {
			problems = append(problems, fmt.Sprintf("%s must be one of [%s], got %q",
				arg.Key(), strings.Join(allowed, ", "), value))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s: %s", errors.ErrValidation, r.Command(), strings.Join(problems, "; "))
	}
	return nil
}
