/*
 *   Copyright 2020 SAP SE
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

package config

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jessevdk/go-flags"
	"github.com/kballard/go-shellquote"
	"github.com/sapcc/go-bits/logg"
	log "github.com/sirupsen/logrus"

	"github.com/sapcc/pnswitch/internal/netvisor"
)

var (
	Version   = "dev"
	BuildTime = "unknown"

	Global PNSwitch
)

type PNSwitch struct {
	ConfigFile string   `long:"config-file" env:"PNSWITCH_CONFIG_FILE" description:"Use config file"`
	Default    Default  `group:"DEFAULT"`
	CLI        CLI      `group:"cli"`
	Output     Output   `group:"output"`
	Switches   []string `long:"switch" description:"Target switch to run the command on, 'local' for the local switch (repeat option to run on several switches in parallel)"`
	Parallel   int      `long:"parallel" default:"4" description:"Maximum number of switches processed at the same time"`
}

type Default struct {
	Debug           bool   `short:"d" long:"debug" ini-name:"debug" description:"Show debug information"`
	SentryDSN       string `long:"sentry-dsn" ini-name:"sentry_dsn" env:"SENTRY_DSN" description:"Report launch failures to this Sentry DSN"`
	MetricsTextfile string `long:"metrics-textfile" ini-name:"metrics_textfile" description:"Write prometheus metrics to this file for the node exporter textfile collector"`
}

type CLI struct {
	Path        string `long:"cli-path" ini-name:"path" env:"PN_CLI" default:"/usr/bin/cli" description:"Switch cli executable, may be prefixed by a wrapper like sudo"`
	Username    string `short:"u" long:"username" ini-name:"username" env:"PN_CLIUSERNAME" description:"Login username"`
	Password    string `short:"p" long:"password" ini-name:"password" env:"PN_CLIPASSWORD" description:"Login password"`
	PasswordCmd string `long:"password-cmd" ini-name:"password_cmd" env:"PN_CLIPASSWORD_CMD" description:"Derive the login password from a shell command"`
	NoQuiet     bool   `long:"no-quiet" ini-name:"no_quiet" description:"Do not pass --quiet to the cli"`
}

type Output struct {
	Format string `short:"f" long:"format" ini-name:"format" description:"The output format, defaults to table" choice:"table" choice:"csv" choice:"markdown" choice:"json" choice:"yaml" choice:"value" default:"table"`
}

func IsDebug() bool {
	return Global.Default.Debug
}

// ParseConfigFile loads the ini file given by --config-file. Options set on
// the command line take precedence over the file.
func ParseConfigFile(parser *flags.Parser) error {
	if Global.ConfigFile == "" {
		return nil
	}
	ini := flags.NewIniParser(parser)
	ini.ParseAsDefaults = true
	if err := ini.ParseFile(Global.ConfigFile); err != nil {
		return fmt.Errorf("failed parsing config file %s: %w", Global.ConfigFile, err)
	}
	return nil
}

func InitLogging() {
	logg.ShowDebug = IsDebug()
	if IsDebug() {
		log.SetLevel(log.DebugLevel)
	}
}

func InitSentry() {
	if Global.Default.SentryDSN == "" {
		return
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     Global.Default.SentryDSN,
		Release: Version,
	}); err != nil {
		logg.Error("Sentry initialization failed: %v", err)
		return
	}
	logg.Debug("Sentry is enabled")
}

func FlushSentry() {
	if Global.Default.SentryDSN != "" {
		sentry.Flush(2 * time.Second)
	}
}

// ResolvePassword runs the password command when no password was given.
func ResolvePassword() error {
	if Global.CLI.PasswordCmd == "" || Global.CLI.Password != "" {
		return nil
	}
	cmd := exec.Command("sh", "-c", Global.CLI.PasswordCmd)
	out, err := cmd.Output()
	if err != nil {
		var stderr []byte
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = exitErr.Stderr
		}
		return fmt.Errorf("password command failed: %s: %s", err.Error(), stderr)
	}
	Global.CLI.Password = strings.TrimSuffix(string(out), "\n")
	return nil
}

// Builder assembles the command builder from the global options.
func Builder() (netvisor.Builder, error) {
	executable, err := shellquote.Split(Global.CLI.Path)
	if err != nil {
		return netvisor.Builder{}, fmt.Errorf("invalid cli path %q: %w", Global.CLI.Path, err)
	}
	return netvisor.Builder{
		Executable: executable,
		Username:   Global.CLI.Username,
		Password:   Global.CLI.Password,
		Quiet:      !Global.CLI.NoQuiet,
	}, nil
}
