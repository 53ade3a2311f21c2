// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package netvisor

// TrunkParams are the optional fields of trunk-create and trunk-modify.
// Trunks aggregate links at Layer 2 on the local switch.
type TrunkParams struct {
	Ports               *string  `yaml:"ports,omitempty"`
	Speed               *string  `yaml:"speed,omitempty"`
	EgressRateLimit     *string  `yaml:"egress_rate_limit,omitempty"`
	Jumbo               TriState `yaml:"jumbo,omitempty"`
	LACPMode            *string  `yaml:"lacp_mode,omitempty"`
	LACPPriority        *int64   `yaml:"lacp_priority,omitempty"`
	LACPTimeout         *string  `yaml:"lacp_timeout,omitempty"`
	LACPFallback        *string  `yaml:"lacp_fallback,omitempty"`
	LACPFallbackTimeout *string  `yaml:"lacp_fallback_timeout,omitempty"`
	EdgeSwitch          TriState `yaml:"edge_switch,omitempty"`
	Pause               TriState `yaml:"pause,omitempty"`
	Description         *string  `yaml:"description,omitempty"`
	Loopback            TriState `yaml:"loopback,omitempty"`
	MirrorReceive       TriState `yaml:"mirror_receive,omitempty"`
	UnknownUcastLevel   *string  `yaml:"unknown_ucast_level,omitempty"`
	UnknownMcastLevel   *string  `yaml:"unknown_mcast_level,omitempty"`
	BroadcastLevel      *string  `yaml:"broadcast_level,omitempty"`
	PortMACAddr         *string  `yaml:"port_macaddr,omitempty"`
	Loopvlans           *string  `yaml:"loopvlans,omitempty"`
	Routing             TriState `yaml:"routing,omitempty"`
	Host                TriState `yaml:"host,omitempty"`
}

func (p *TrunkParams) Family() Family {
	return FamilyTrunk
}

func (p *TrunkParams) required(a Action) []string {
	if a == ActionCreate {
		return []string{"ports"}
	}
	return nil
}

func (p *TrunkParams) arguments() []argument {
	return []argument{
		str("ports", p.Ports),
		str("speed", p.Speed),
		str("egress_rate_limit", p.EgressRateLimit),
		toggle("jumbo", p.Jumbo),
		str("lacp_mode", p.LACPMode),
		integer("lacp_priority", p.LACPPriority),
		str("lacp_timeout", p.LACPTimeout),
		str("lacp_fallback", p.LACPFallback),
		str("lacp_fallback_timeout", p.LACPFallbackTimeout),
		toggle("edge_switch", p.EdgeSwitch),
		toggle("pause", p.Pause),
		str("description", p.Description),
		toggle("loopback", p.Loopback),
		toggleAs("mirror_receive", "mirror-receive-only", "no-mirror-receive-only", p.MirrorReceive),
		str("unknown_ucast_level", p.UnknownUcastLevel),
		str("unknown_mcast_level", p.UnknownMcastLevel),
		str("broadcast_level", p.BroadcastLevel),
		strAs("port_macaddr", "port-mac-address", p.PortMACAddr),
		str("loopvlans", p.Loopvlans),
		toggle("routing", p.Routing),
		toggleAs("host", "host-enable", "host-disable", p.Host),
	}
}
