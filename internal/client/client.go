/*
 *   Copyright 2021 SAP SE
 *
 *   Licensed under the Apache License, Version 2.0 (the "License");
 *   you may not use this file except in compliance with the License.
 *   You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 *   Unless required by applicable law or agreed to in writing, software
 *   distributed under the License is distributed on an "AS IS" BASIS,
 *   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *   See the License for the specific language governing permissions and
 *   limitations under the License.
 */

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/jmoiron/sqlx/reflectx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sapcc/go-bits/logg"
	"golang.org/x/sync/errgroup"

	"github.com/sapcc/pnswitch/internal"
	"github.com/sapcc/pnswitch/internal/config"
	pnerrors "github.com/sapcc/pnswitch/internal/errors"
	"github.com/sapcc/pnswitch/internal/invoker"
	"github.com/sapcc/pnswitch/internal/netvisor"
)

var (
	Parser = flags.NewParser(&config.Global, flags.Default)
	Mapper = reflectx.NewMapper("json")

	// Stdout receives the rendered reports.
	Stdout io.Writer = os.Stdout

	NewInvoker = func() invoker.Invoker { return invoker.NewExec() }

	runCtx = context.Background()
)

const (
	ExitOK          = 0
	ExitError       = 1
	ExitToolFailure = 2
)

// SetupClient parses the command line, runs the selected command and returns
// the process exit code.
func SetupClient(ctx context.Context) int {
	runCtx = ctx
	netvisor.InitializePrometheus(prometheus.DefaultRegisterer)

	Parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}

		if err := config.ParseConfigFile(Parser); err != nil {
			return err
		}
		config.InitLogging()
		config.InitSentry()
		if err := config.ResolvePassword(); err != nil {
			return err
		}

		return command.Execute(args)
	}

	_, err := Parser.Parse()
	config.FlushSentry()
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return ExitOK
		}
		if errors.Is(err, pnerrors.ErrToolFailure) {
			return ExitToolFailure
		}
		return ExitError
	}
	return ExitOK
}

// execute runs the request on every selected switch and prints the reports.
func execute(req netvisor.Request) error {
	builder, err := config.Builder()
	if err != nil {
		return err
	}
	adapter := netvisor.NewAdapter(builder, NewInvoker())

	switches := internal.Unique(config.Global.Switches)
	if len(switches) == 0 {
		switches = []string{req.Switch}
	}
	reports, err := runOnSwitches(runCtx, adapter, req, switches, config.Global.Parallel)

	if path := config.Global.Default.MetricsTextfile; path != "" {
		if merr := netvisor.WriteTextfile(path, prometheus.DefaultGatherer); merr != nil {
			logg.Error("Failed writing metrics: %s", merr.Error())
		}
	}

	// show what ran even when other switches failed
	ran := make([]netvisor.Report, 0, len(reports))
	for _, r := range reports {
		if r.Command != "" {
			ran = append(ran, r)
		}
	}
	if len(ran) > 0 {
		if werr := WriteReports(Stdout, config.Global.Output.Format, ran); werr != nil {
			return errors.Join(err, werr)
		}
	}
	if err != nil {
		return err
	}

	for _, r := range reports {
		if r.Failed() {
			return pnerrors.ErrToolFailure
		}
	}
	return nil
}

// runOnSwitches runs one independent request per switch. Reports are returned
// in the order of switches, also when some switches failed; a switch without
// a rendered command has a zero Report. Errors of all switches are joined.
func runOnSwitches(ctx context.Context, adapter *netvisor.Adapter, req netvisor.Request, switches []string, parallel int) ([]netvisor.Report, error) {
	reports := make([]netvisor.Report, len(switches))
	errs := make([]error, len(switches))

	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, sw := range switches {
		r := req
		r.Switch = sw
		g.Go(func() error {
			report, err := adapter.Execute(ctx, r)
			reports[i] = report
			if err != nil && sw != "" {
				err = fmt.Errorf("switch %s: %w", sw, err)
			}
			errs[i] = err
			return nil
		})
	}

	_ = g.Wait()
	return reports, errors.Join(errs...)
}
