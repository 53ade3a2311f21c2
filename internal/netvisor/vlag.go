// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package netvisor

// VLAGParams are the optional fields of vlag-create and vlag-modify.
// A VLAG spans links connected to two different switches that appear as a
// single trunk to a third device.
type VLAGParams struct {
	Port                *string `yaml:"port,omitempty"`
	PeerPort            *string `yaml:"peer_port,omitempty"`
	Mode                *string `yaml:"mode,omitempty"`
	PeerSwitch          *string `yaml:"peer_switch,omitempty"`
	FailoverAction      *string `yaml:"failover_action,omitempty"`
	LACPMode            *string `yaml:"lacp_mode,omitempty"`
	LACPTimeout         *string `yaml:"lacp_timeout,omitempty"`
	LACPFallback        *string `yaml:"lacp_fallback,omitempty"`
	LACPFallbackTimeout *string `yaml:"lacp_fallback_timeout,omitempty"`
}

func (p *VLAGParams) Family() Family {
	return FamilyVLAG
}

func (p *VLAGParams) required(a Action) []string {
	if a == ActionCreate {
		return []string{"port", "peer_port"}
	}
	return nil
}

func (p *VLAGParams) arguments() []argument {
	return []argument{
		str("port", p.Port),
		str("peer_port", p.PeerPort),
		str("mode", p.Mode),
		// peer-switch and its value form a single token.
		affix("peer_switch", "peer-switch", "", p.PeerSwitch),
		affix("failover_action", "failover-", "-L2", p.FailoverAction),
		str("lacp_mode", p.LACPMode),
		str("lacp_timeout", p.LACPTimeout),
		str("lacp_fallback", p.LACPFallback),
		str("lacp_fallback_timeout", p.LACPFallbackTimeout),
	}
}
