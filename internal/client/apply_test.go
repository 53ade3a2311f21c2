// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pnerrors "github.com/sapcc/pnswitch/internal/errors"
	"github.com/sapcc/pnswitch/internal/netvisor"
)

const vlagRequest = `command: vlag-create
name: spine-to-leaf
switch: spine01
params:
  port: spine01-to-leaf
  peer_port: spine02-to-leaf
  peer_switch: spine02
  mode: active-active
`

func TestLoadRequestVLAG(t *testing.T) {
	req, err := LoadRequest(strings.NewReader(vlagRequest))
	require.NoError(t, err)

	assert.Equal(t, netvisor.ActionCreate, req.Action)
	assert.Equal(t, netvisor.FamilyVLAG, req.Family())
	assert.Equal(t, "spine-to-leaf", req.Name)
	assert.Equal(t, "spine01", req.Switch)
	p := req.Params.(*netvisor.VLAGParams)
	assert.Equal(t, "spine02-to-leaf", *p.PeerPort)
	assert.Equal(t, "active-active", *p.Mode)
	assert.Nil(t, p.FailoverAction)
}

func TestLoadRequestTrunkTriStates(t *testing.T) {
	req, err := LoadRequest(strings.NewReader(`command: trunk-modify
name: t1
params:
  jumbo: false
  host: true
  lacp_priority: 100
`))
	require.NoError(t, err)

	p := req.Params.(*netvisor.TrunkParams)
	assert.Equal(t, netvisor.False, p.Jumbo)
	assert.Equal(t, netvisor.True, p.Host)
	assert.Equal(t, netvisor.Unset, p.Pause)
	assert.Equal(t, int64(100), *p.LACPPriority)
}

func TestLoadRequestWithoutParams(t *testing.T) {
	req, err := LoadRequest(strings.NewReader("command: trunk-delete\nname: t1\n"))
	require.NoError(t, err)
	assert.Equal(t, netvisor.ActionDelete, req.Action)
	assert.NoError(t, req.Validate())
}

func TestLoadRequestRejectsUnknownFields(t *testing.T) {
	_, err := LoadRequest(strings.NewReader("command: trunk-delete\nname: t1\nforce: true\n"))
	assert.ErrorIs(t, err, pnerrors.ErrValidation)

	// peer_switch is a VLAG field
	_, err = LoadRequest(strings.NewReader("command: trunk-modify\nname: t1\nparams:\n  peer_switch: spine02\n"))
	assert.ErrorIs(t, err, pnerrors.ErrValidation)
	assert.ErrorContains(t, err, "peer_switch")
}

func TestLoadRequestUnknownCommand(t *testing.T) {
	_, err := LoadRequest(strings.NewReader("command: vrouter-create\nname: r1\n"))
	assert.ErrorIs(t, err, pnerrors.ErrUnknownFamily)
}

func TestApplyCommand(t *testing.T) {
	t.Setenv("PN_CLIUSERNAME", "")
	t.Setenv("PN_CLIPASSWORD", "")
	fake, buf := setupFake(t, "ok", "")

	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(vlagRequest), 0o600))

	_, err := Parser.ParseArgs([]string{"--format", "value", "--no-quiet", "apply", path})
	require.NoError(t, err)
	require.Len(t, fake.Calls(), 1)
	assert.Equal(t, []string{"/usr/bin/cli", "switch", "spine01", "vlag-create", "name", "spine-to-leaf",
		"port", "spine01-to-leaf", "peer-port", "spine02-to-leaf", "mode", "active-active", "peer-switchspine02"},
		fake.Calls()[0])
	assert.Contains(t, buf.String(), "ok")
}
