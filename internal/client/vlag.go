// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"github.com/sapcc/pnswitch/internal/netvisor"
)

var VLAGOptions struct {
	VLAGCreate `command:"create" description:"Create a VLAG (vlag-create)"`
	VLAGModify `command:"modify" description:"Modify a VLAG (vlag-modify)"`
	VLAGDelete `command:"delete" description:"Delete a VLAG (vlag-delete)"`
}

type vlagFields struct {
	Port                string `long:"port" description:"Local VLAG port"`
	PeerPort            string `long:"peer-port" description:"Peer VLAG port"`
	Mode                string `long:"mode" description:"active-standby keeps one side in standby, active-active brings both sides up" choice:"active-active" choice:"active-standby"`
	PeerSwitch          string `long:"peer-switch" description:"Fabric name of the peer switch"`
	FailoverAction      string `long:"failover-action" description:"Failover action" choice:"move" choice:"ignore"`
	LACPMode            string `long:"lacp-mode" description:"LACP mode" choice:"off" choice:"passive" choice:"active"`
	LACPTimeout         string `long:"lacp-timeout" description:"LACP timeout, slow (30 seconds) or fast (4 seconds)" choice:"slow" choice:"fast"`
	LACPFallback        string `long:"lacp-fallback" description:"LACP fallback mode" choice:"bundle" choice:"individual"`
	LACPFallbackTimeout string `long:"lacp-fallback-timeout" description:"LACP fallback timeout in seconds, between 30 and 60"`
}

func (f *vlagFields) params() *netvisor.VLAGParams {
	return &netvisor.VLAGParams{
		Port:                optional(f.Port),
		PeerPort:            optional(f.PeerPort),
		Mode:                optional(f.Mode),
		PeerSwitch:          optional(f.PeerSwitch),
		FailoverAction:      optional(f.FailoverAction),
		LACPMode:            optional(f.LACPMode),
		LACPTimeout:         optional(f.LACPTimeout),
		LACPFallback:        optional(f.LACPFallback),
		LACPFallbackTimeout: optional(f.LACPFallbackTimeout),
	}
}

type VLAGCreate struct {
	Name string `short:"n" long:"name" description:"Name of the VLAG"`
	vlagFields
}

func (o *VLAGCreate) Request() netvisor.Request {
	return netvisor.Request{Action: netvisor.ActionCreate, Name: o.Name, Params: o.params()}
}

func (o *VLAGCreate) Execute(_ []string) error {
	return execute(o.Request())
}

type VLAGModify struct {
	Name string `short:"n" long:"name" description:"Name of the VLAG"`
	vlagFields
}

func (o *VLAGModify) Request() netvisor.Request {
	return netvisor.Request{Action: netvisor.ActionModify, Name: o.Name, Params: o.params()}
}

func (o *VLAGModify) Execute(_ []string) error {
	return execute(o.Request())
}

type VLAGDelete struct {
	Name string `short:"n" long:"name" description:"Name of the VLAG"`
}

func (o *VLAGDelete) Request() netvisor.Request {
	return netvisor.Request{Action: netvisor.ActionDelete, Name: o.Name, Params: &netvisor.VLAGParams{}}
}

func (o *VLAGDelete) Execute(_ []string) error {
	return execute(o.Request())
}

func init() {
	if _, err := Parser.AddCommand("vlag", "VLAGs",
		"Virtual link aggregation groups spanning two switches.", &VLAGOptions); err != nil {
		panic(err)
	}
}
