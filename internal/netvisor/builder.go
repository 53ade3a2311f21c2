// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package netvisor

import (
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/sapcc/pnswitch/internal/errors"
)

const DefaultExecutable = "/usr/bin/cli"

// Builder renders requests into cli argument vectors.
type Builder struct {
	// Executable is the cli path, optionally preceded by a wrapper like sudo.
	Executable []string
	Username   string
	Password   string
	Quiet      bool
}

// Command is a rendered cli invocation.
type Command struct {
	Args []string
}

// String joins the arguments with shell quoting, so that splitting the result
// with shell rules gives back Args.
func (c Command) String() string {
	return shellquote.Join(c.Args...)
}

// Redacted is like String with the password masked, for logs.
func (c Command) Redacted() string {
	args := slices.Clone(c.Args)
	for i := 0; i < len(args)-1; i++ {
		if args[i] != "--user" {
			continue
		}
		if user, _, found := strings.Cut(args[i+1], ":"); found {
			args[i+1] = user + ":REDACTED"
		}
		break
	}
	return shellquote.Join(args...)
}

// Build validates the request and renders it. The same request always
// yields the same arguments.
func (b Builder) Build(req Request) (Command, error) {
	if err := req.Validate(); err != nil {
		return Command{}, err
	}
	if len(b.Executable) == 0 || b.Executable[0] == "" {
		return Command{}, errors.ErrMissingExecutable
	}

	args := slices.Clone(b.Executable)
	if b.Quiet {
		args = append(args, "--quiet")
	}
	if b.Username != "" || b.Password != "" {
		args = append(args, "--user", b.Username+":"+b.Password)
	}

	switch req.Switch {
	case "":
	case LocalSwitch:
		args = append(args, "switch-local")
	default:
		args = append(args, "switch", req.Switch)
	}

	args = append(args, req.Command(), "name", req.Name)
	for _, arg := range req.Params.arguments() {
		args = append(args, arg.Tokens()...)
	}
	return Command{Args: args}, nil
}
