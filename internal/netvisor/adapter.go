// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package netvisor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	pnerrors "github.com/sapcc/pnswitch/internal/errors"
	"github.com/sapcc/pnswitch/internal/invoker"
)

// Adapter runs requests against the cli: build, invoke once, report.
type Adapter struct {
	builder Builder
	invoker invoker.Invoker
}

func NewAdapter(builder Builder, inv invoker.Invoker) *Adapter {
	return &Adapter{builder: builder, invoker: inv}
}

// Execute returns a Report for every request that reached the cli, including
// ones the cli rejected. Errors are reserved for invalid requests and for
// failures to start the cli; in the latter case the Report still carries the
// command that was attempted.
func (a *Adapter) Execute(ctx context.Context, req Request) (Report, error) {
	family := string(req.Family())
	logger := log.WithFields(log.Fields{
		"request_id": uuid.NewString(),
		"family":     family,
		"command":    req.Command(),
		"name":       req.Name,
	})
	if req.Switch != "" {
		logger = logger.WithField("switch", req.Switch)
	}

	cmd, err := a.builder.Build(req)
	if err != nil {
		commandCount.WithLabelValues(family, req.Command(), outcomeInvalid).Inc()
		return Report{}, err
	}
	logger.Debugf("Running %s", cmd.Redacted())

	start := time.Now()
	out, err := a.invoker.Run(ctx, cmd.Args)
	commandDuration.WithLabelValues(family).Observe(time.Since(start).Seconds())
	if err != nil {
		report := Report{Switch: req.Switch, Command: cmd.String()}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			commandCount.WithLabelValues(family, req.Command(), outcomeCanceled).Inc()
			return report, err
		}
		commandCount.WithLabelValues(family, req.Command(), outcomeLaunch).Inc()
		if errors.Is(err, pnerrors.ErrLaunch) {
			sentry.CaptureException(err)
		}
		logger.WithError(err).Errorf("Failed to launch cli: %s", cmd.Redacted())
		return report, err
	}

	if out.ExitCode != 0 && strings.TrimRight(out.Stderr, "\r\n") == "" {
		logger.Warnf("cli exited with status %d without error output, reporting success", out.ExitCode)
	}

	report := NewReport(req.Family(), cmd, out)
	report.Switch = req.Switch
	if report.Failed() {
		commandCount.WithLabelValues(family, req.Command(), outcomeFailure).Inc()
		logger.Warnf("cli rejected command: %s", *report.Stderr)
	} else {
		commandCount.WithLabelValues(family, req.Command(), outcomeSuccess).Inc()
		logger.Infof("%s %s done", req.Command(), req.Name)
	}
	return report, nil
}
