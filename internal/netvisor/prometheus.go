// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package netvisor

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

var (
	commandCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pnswitch_commands_total",
		Help: "The total number of cli commands by outcome",
	}, []string{"family", "command", "outcome"})
	commandDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pnswitch_command_duration_seconds",
		Help:    "Runtime of cli processes",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"family"})
)

const (
	outcomeSuccess  = "success"
	outcomeFailure  = "failure"
	outcomeInvalid  = "invalid"
	outcomeLaunch   = "launch_error"
	outcomeCanceled = "canceled"
)

func InitializePrometheus(reg prometheus.Registerer) {
	reg.MustRegister(commandCount, commandDuration)
	for _, f := range Families {
		for _, a := range Actions {
			commandCount.WithLabelValues(string(f), f.Command(a), outcomeSuccess).Add(0)
		}
	}
}

// WriteTextfile dumps the gathered metrics for the node exporter textfile
// collector, since a one-shot process cannot be scraped.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return err
	}
	log.Debugf("Wrote metrics to %s", path)
	return nil
}
