// Copyright 2023 SAP SE
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"fmt"

	"github.com/sapcc/pnswitch/internal/config"
)

type VersionOptions struct{}

func (*VersionOptions) Execute(_ []string) error {
	_, err := fmt.Fprintf(Stdout, "pnswitch %s (%s)\n", config.Version, config.BuildTime)
	return err
}

func init() {
	if _, err := Parser.AddCommand("version", "Version",
		"Show Version.", &VersionOptions{}); err != nil {
		panic(err)
	}
}
