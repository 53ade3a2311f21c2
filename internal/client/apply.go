// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	pnerrors "github.com/sapcc/pnswitch/internal/errors"
	"github.com/sapcc/pnswitch/internal/netvisor"
)

// requestFile is the YAML form of a single request:
//
//	command: vlag-create
//	name: spine-to-leaf
//	switch: spine01
//	params:
//	  port: spine01-to-leaf
//	  peer_port: spine02-to-leaf
type requestFile struct {
	Command string    `yaml:"command"`
	Name    string    `yaml:"name"`
	Switch  string    `yaml:"switch"`
	Params  yaml.Node `yaml:"params"`
}

// LoadRequest decodes a request document. Unknown keys are rejected.
func LoadRequest(r io.Reader) (netvisor.Request, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f requestFile
	if err := dec.Decode(&f); err != nil {
		return netvisor.Request{}, fmt.Errorf("%w: %w", pnerrors.ErrValidation, err)
	}

	family, action, err := netvisor.ParseCommand(f.Command)
	if err != nil {
		return netvisor.Request{}, err
	}
	params, err := netvisor.NewParams(family)
	if err != nil {
		return netvisor.Request{}, err
	}

	if f.Params.Kind != 0 {
		// yaml.Node.Decode is never strict, so take the detour over bytes
		raw, err := yaml.Marshal(&f.Params)
		if err != nil {
			return netvisor.Request{}, err
		}
		pdec := yaml.NewDecoder(bytes.NewReader(raw))
		pdec.KnownFields(true)
		if err := pdec.Decode(params); err != nil {
			return netvisor.Request{}, fmt.Errorf("%w: %s params: %w", pnerrors.ErrValidation, f.Command, err)
		}
	}

	return netvisor.Request{Action: action, Name: f.Name, Switch: f.Switch, Params: params}, nil
}

type ApplyOptions struct {
	Positional struct {
		File string `positional-arg-name:"file" description:"YAML request file, - for stdin"`
	} `positional-args:"yes" required:"yes"`
}

func (o *ApplyOptions) Execute(_ []string) error {
	var r io.Reader = os.Stdin
	if o.Positional.File != "-" {
		f, err := os.Open(o.Positional.File)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	req, err := LoadRequest(r)
	if err != nil {
		return err
	}
	return execute(req)
}

func init() {
	if _, err := Parser.AddCommand("apply", "Apply request file",
		"Run the trunk or VLAG command described by a YAML request file.", &ApplyOptions{}); err != nil {
		panic(err)
	}
}
