// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"github.com/sapcc/pnswitch/internal/netvisor"
)

var TrunkOptions struct {
	TrunkCreate `command:"create" description:"Create a trunk (trunk-create)"`
	TrunkModify `command:"modify" description:"Modify a trunk (trunk-modify)"`
	TrunkDelete `command:"delete" description:"Delete a trunk (trunk-delete)"`
}

type trunkFields struct {
	Ports               string `long:"ports" description:"Port number(s) of the links to aggregate into the trunk"`
	Speed               string `long:"speed" description:"Port speed or disable the port" choice:"disable" choice:"10m" choice:"100m" choice:"1g" choice:"2.5g" choice:"10g" choice:"40g"`
	EgressRateLimit     string `long:"egress-rate-limit" description:"Egress port data rate limit"`
	Jumbo               bool   `long:"jumbo" description:"Receive jumbo frames"`
	NoJumbo             bool   `long:"no-jumbo" description:"Do not receive jumbo frames"`
	LACPMode            string `long:"lacp-mode" description:"LACP mode" choice:"off" choice:"passive" choice:"active"`
	LACPPriority        *int64 `long:"lacp-priority" description:"LACP priority between 1 and 65535, the switch defaults to 32768"`
	LACPTimeout         string `long:"lacp-timeout" description:"LACP timeout, slow (30 seconds) or fast (4 seconds)" choice:"slow" choice:"fast"`
	LACPFallback        string `long:"lacp-fallback" description:"LACP fallback mode" choice:"bundle" choice:"individual"`
	LACPFallbackTimeout string `long:"lacp-fallback-timeout" description:"LACP fallback timeout in seconds, between 30 and 60"`
	EdgeSwitch          bool   `long:"edge-switch" description:"The switch is an edge switch"`
	NoEdgeSwitch        bool   `long:"no-edge-switch" description:"The switch is not an edge switch"`
	Pause               bool   `long:"pause" description:"Send pause frames"`
	NoPause             bool   `long:"no-pause" description:"Do not send pause frames"`
	Description         string `long:"description" description:"Description of the trunk"`
	Loopback            bool   `long:"loopback" description:"Enable loopback"`
	NoLoopback          bool   `long:"no-loopback" description:"Disable loopback"`
	MirrorReceive       bool   `long:"mirror-receive" description:"Receive mirrored traffic only"`
	NoMirrorReceive     bool   `long:"no-mirror-receive" description:"Do not restrict to mirrored traffic"`
	UnknownUcastLevel   string `long:"unknown-ucast-level" description:"Unknown unicast level in percent"`
	UnknownMcastLevel   string `long:"unknown-mcast-level" description:"Unknown multicast level in percent"`
	BroadcastLevel      string `long:"broadcast-level" description:"Broadcast level in percent"`
	PortMACAddr         string `long:"port-macaddr" description:"MAC address of the port"`
	Loopvlans           string `long:"loopvlans" description:"List of looping VLANs"`
	Routing             bool   `long:"routing" description:"The port participates in routing"`
	NoRouting           bool   `long:"no-routing" description:"The port does not participate in routing"`
	Host                bool   `long:"host" description:"Enable host facing port control"`
	NoHost              bool   `long:"no-host" description:"Disable host facing port control"`
}

func (f *trunkFields) params() (*netvisor.TrunkParams, error) {
	var t toggles
	p := &netvisor.TrunkParams{
		Ports:               optional(f.Ports),
		Speed:               optional(f.Speed),
		EgressRateLimit:     optional(f.EgressRateLimit),
		Jumbo:               t.get("jumbo", f.Jumbo, f.NoJumbo),
		LACPMode:            optional(f.LACPMode),
		LACPPriority:        f.LACPPriority,
		LACPTimeout:         optional(f.LACPTimeout),
		LACPFallback:        optional(f.LACPFallback),
		LACPFallbackTimeout: optional(f.LACPFallbackTimeout),
		EdgeSwitch:          t.get("edge-switch", f.EdgeSwitch, f.NoEdgeSwitch),
		Pause:               t.get("pause", f.Pause, f.NoPause),
		Description:         optional(f.Description),
		Loopback:            t.get("loopback", f.Loopback, f.NoLoopback),
		MirrorReceive:       t.get("mirror-receive", f.MirrorReceive, f.NoMirrorReceive),
		UnknownUcastLevel:   optional(f.UnknownUcastLevel),
		UnknownMcastLevel:   optional(f.UnknownMcastLevel),
		BroadcastLevel:      optional(f.BroadcastLevel),
		PortMACAddr:         optional(f.PortMACAddr),
		Loopvlans:           optional(f.Loopvlans),
		Routing:             t.get("routing", f.Routing, f.NoRouting),
		Host:                t.get("host", f.Host, f.NoHost),
	}
	return p, t.err()
}

type TrunkCreate struct {
	Name string `short:"n" long:"name" description:"Name of the trunk"`
	trunkFields
}

func (o *TrunkCreate) Request() (netvisor.Request, error) {
	p, err := o.params()
	return netvisor.Request{Action: netvisor.ActionCreate, Name: o.Name, Params: p}, err
}

func (o *TrunkCreate) Execute(_ []string) error {
	req, err := o.Request()
	if err != nil {
		return err
	}
	return execute(req)
}

type TrunkModify struct {
	Name string `short:"n" long:"name" description:"Name of the trunk"`
	trunkFields
}

func (o *TrunkModify) Request() (netvisor.Request, error) {
	p, err := o.params()
	return netvisor.Request{Action: netvisor.ActionModify, Name: o.Name, Params: p}, err
}

func (o *TrunkModify) Execute(_ []string) error {
	req, err := o.Request()
	if err != nil {
		return err
	}
	return execute(req)
}

type TrunkDelete struct {
	Name string `short:"n" long:"name" description:"Name of the trunk"`
}

func (o *TrunkDelete) Request() (netvisor.Request, error) {
	return netvisor.Request{Action: netvisor.ActionDelete, Name: o.Name, Params: &netvisor.TrunkParams{}}, nil
}

func (o *TrunkDelete) Execute(_ []string) error {
	req, err := o.Request()
	if err != nil {
		return err
	}
	return execute(req)
}

func init() {
	if _, err := Parser.AddCommand("trunk", "Trunks",
		"Layer 2 link aggregation on the local switch.", &TrunkOptions); err != nil {
		panic(err)
	}
}
