// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapcc/pnswitch/internal/config"
	pnerrors "github.com/sapcc/pnswitch/internal/errors"
	"github.com/sapcc/pnswitch/internal/invoker"
	"github.com/sapcc/pnswitch/internal/netvisor"
)

// setupFake routes cli invocations to a fake and captures printed reports.
func setupFake(t *testing.T, stdout, stderr string) (*invoker.FakeInvoker, *bytes.Buffer) {
	t.Helper()
	fake := invoker.NewFakeInvoker(stdout, stderr)
	buf := new(bytes.Buffer)

	oldInvoker, oldStdout := NewInvoker, Stdout
	NewInvoker = func() invoker.Invoker { return fake }
	Stdout = buf
	t.Cleanup(func() {
		NewInvoker, Stdout = oldInvoker, oldStdout
		config.Global = config.PNSwitch{}
		TrunkOptions.TrunkCreate = TrunkCreate{}
		TrunkOptions.TrunkModify = TrunkModify{}
		TrunkOptions.TrunkDelete = TrunkDelete{}
		VLAGOptions.VLAGCreate = VLAGCreate{}
		VLAGOptions.VLAGModify = VLAGModify{}
		VLAGOptions.VLAGDelete = VLAGDelete{}
	})
	return fake, buf
}

func TestTrunkCreateCommand(t *testing.T) {
	t.Setenv("PN_CLIUSERNAME", "")
	t.Setenv("PN_CLIPASSWORD", "")
	fake, buf := setupFake(t, "Created trunk spine-to-leaf", "")

	_, err := Parser.ParseArgs([]string{"--format", "json",
		"trunk", "create", "-n", "spine-to-leaf", "--ports", "11,12,13,14", "--jumbo", "--no-pause"})
	require.NoError(t, err)

	require.Len(t, fake.Calls(), 1)
	assert.Equal(t, []string{"/usr/bin/cli", "--quiet", "trunk-create", "name", "spine-to-leaf",
		"ports", "11,12,13,14", "jumbo", "no-pause"}, fake.Calls()[0])

	var report netvisor.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.True(t, report.Changed)
	assert.Equal(t, "Created trunk spine-to-leaf", *report.Stdout)
}

func TestVLAGCreateCommandOnSwitches(t *testing.T) {
	t.Setenv("PN_CLIUSERNAME", "")
	t.Setenv("PN_CLIPASSWORD", "")
	fake, buf := setupFake(t, "", "")

	_, err := Parser.ParseArgs([]string{"--format", "json", "--switch", "spine01", "--switch", "spine02",
		"-u", "admin", "-p", "pw",
		"vlag", "create", "-n", "spine-to-leaf", "--port", "spine01-to-leaf", "--peer-port", "spine02-to-leaf",
		"--failover-action", "ignore"})
	require.NoError(t, err)
	require.Len(t, fake.Calls(), 2)

	var reports []netvisor.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "spine01", reports[0].Switch)
	assert.Equal(t, "spine02", reports[1].Switch)
	assert.Contains(t, reports[0].Command, "--user admin:pw switch spine01 vlag-create name spine-to-leaf")
	assert.Contains(t, reports[1].Command, "failover-ignore-L2")
	assert.Equal(t, 0, *reports[1].RC)
}

func TestCommandToolFailure(t *testing.T) {
	_, _ = setupFake(t, "", "trunk t1 not found")

	_, err := Parser.ParseArgs([]string{"trunk", "delete", "-n", "t1"})
	assert.ErrorIs(t, err, pnerrors.ErrToolFailure)
}

func TestCommandValidationFailure(t *testing.T) {
	fake, buf := setupFake(t, "ok", "")

	_, err := Parser.ParseArgs([]string{"trunk", "create", "-n", "t1"})
	assert.ErrorIs(t, err, pnerrors.ErrValidation)
	assert.Empty(t, fake.Calls())
	assert.Empty(t, buf.String())
}

func TestCommandRejectsInvalidChoice(t *testing.T) {
	fake, _ := setupFake(t, "ok", "")

	_, err := Parser.ParseArgs([]string{"vlag", "modify", "-n", "v1", "--mode", "both"})
	assert.Error(t, err)
	assert.Empty(t, fake.Calls())
}

func TestTrunkToggleConflict(t *testing.T) {
	o := TrunkModify{Name: "t1"}
	o.Jumbo = true
	o.NoJumbo = true
	o.Host = true

	_, err := o.Request()
	require.ErrorIs(t, err, pnerrors.ErrValidation)
	assert.Contains(t, err.Error(), "--jumbo and --no-jumbo are mutually exclusive")
}

func TestTrunkFieldsParams(t *testing.T) {
	prio := int64(4096)
	o := TrunkCreate{Name: "t1"}
	o.Ports = "1,2"
	o.LACPPriority = &prio
	o.NoHost = true
	o.MirrorReceive = true

	req, err := o.Request()
	require.NoError(t, err)
	p := req.Params.(*netvisor.TrunkParams)
	assert.Equal(t, netvisor.ActionCreate, req.Action)
	assert.Equal(t, "1,2", *p.Ports)
	assert.Nil(t, p.Speed)
	assert.Equal(t, int64(4096), *p.LACPPriority)
	assert.Equal(t, netvisor.False, p.Host)
	assert.Equal(t, netvisor.True, p.MirrorReceive)
	assert.Equal(t, netvisor.Unset, p.Jumbo)
}

func TestRunOnSwitchesKeepsOrder(t *testing.T) {
	fake := invoker.NewFakeInvoker("ok", "")
	adapter := netvisor.NewAdapter(netvisor.Builder{Executable: []string{"cli"}}, fake)
	req := netvisor.Request{Action: netvisor.ActionDelete, Name: "t1", Params: &netvisor.TrunkParams{}}
	switches := []string{"leaf01", "leaf02", "leaf03", netvisor.LocalSwitch}

	reports, err := runOnSwitches(context.Background(), adapter, req, switches, 2)
	require.NoError(t, err)
	require.Len(t, reports, len(switches))
	for i, sw := range switches {
		assert.Equal(t, sw, reports[i].Switch)
	}
	assert.Equal(t, "cli switch-local trunk-delete name t1", reports[3].Command)
	assert.Len(t, fake.Calls(), len(switches))
}

func TestRunOnSwitchesValidationError(t *testing.T) {
	fake := invoker.NewFakeInvoker("ok", "")
	adapter := netvisor.NewAdapter(netvisor.Builder{Executable: []string{"cli"}}, fake)
	req := netvisor.Request{Action: netvisor.ActionCreate, Name: "t1", Params: &netvisor.TrunkParams{}}

	_, err := runOnSwitches(context.Background(), adapter, req, []string{"a", "b"}, 0)
	assert.ErrorIs(t, err, pnerrors.ErrValidation)
	assert.Empty(t, fake.Calls())
}

// switchFailingInvoker cannot start the cli for one switch and succeeds for
// all others.
type switchFailingInvoker struct {
	*invoker.FakeInvoker
	failSwitch string
}

func (f *switchFailingInvoker) Run(ctx context.Context, args []string) (invoker.Output, error) {
	if i := slices.Index(args, "switch"); i >= 0 && i+1 < len(args) && args[i+1] == f.failSwitch {
		return invoker.Output{}, fmt.Errorf("%w: %s: permission denied", pnerrors.ErrLaunch, args[0])
	}
	return f.FakeInvoker.Run(ctx, args)
}

func TestRunOnSwitchesKeepsReportsOnLaunchError(t *testing.T) {
	inv := &switchFailingInvoker{FakeInvoker: invoker.NewFakeInvoker("ok", ""), failSwitch: "spine02"}
	adapter := netvisor.NewAdapter(netvisor.Builder{Executable: []string{"cli"}}, inv)
	req := netvisor.Request{Action: netvisor.ActionDelete, Name: "t1", Params: &netvisor.TrunkParams{}}

	reports, err := runOnSwitches(context.Background(), adapter, req, []string{"spine01", "spine02", "spine03"}, 2)
	require.ErrorIs(t, err, pnerrors.ErrLaunch)
	assert.Contains(t, err.Error(), "switch spine02")
	require.Len(t, reports, 3)

	assert.True(t, reports[0].Changed)
	assert.Equal(t, "cli switch spine01 trunk-delete name t1", reports[0].Command)
	assert.Equal(t, "cli switch spine02 trunk-delete name t1", reports[1].Command)
	assert.False(t, reports[1].Changed)
	assert.True(t, reports[2].Changed)
	assert.Len(t, inv.Calls(), 2)
}

func TestCommandPrintsReportsOnLaunchError(t *testing.T) {
	t.Setenv("PN_CLIUSERNAME", "")
	t.Setenv("PN_CLIPASSWORD", "")
	fake, buf := setupFake(t, "ok", "")
	inv := &switchFailingInvoker{FakeInvoker: fake, failSwitch: "bad"}
	NewInvoker = func() invoker.Invoker { return inv }

	_, err := Parser.ParseArgs([]string{"--format", "json", "--switch", "spine01", "--switch", "bad",
		"trunk", "delete", "-n", "t1"})
	require.ErrorIs(t, err, pnerrors.ErrLaunch)

	var reports []netvisor.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "spine01", reports[0].Switch)
	assert.True(t, reports[0].Changed)
	assert.Equal(t, "bad", reports[1].Switch)
	assert.Contains(t, reports[1].Command, "switch bad trunk-delete name t1")
}

func TestTrunkDeleteRequest(t *testing.T) {
	req, err := (&TrunkDelete{Name: "t1"}).Request()
	require.NoError(t, err)
	assert.Equal(t, netvisor.ActionDelete, req.Action)
	assert.Equal(t, "trunk-delete", req.Command())
	assert.NoError(t, req.Validate())

	_, err = (&TrunkDelete{}).Request()
	require.NoError(t, err)
}
