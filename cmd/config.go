// Copyright 2022 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/pingcap/pwgen/pkg/config"
	"github.com/pingcap/pwgen/pkg/tui"
	"github.com/spf13/cobra"
)

func (a *app) newConfigCmd() *cobra.Command {
	var env bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if env {
				rows := [][]string{{"Variable"}}
				for _, name := range config.EnvNames() {
					rows = append(rows, []string{name})
				}
				tui.PrintTable(a.log.Stdout(), rows, true)
				return nil
			}
			return a.cfg.Encode(a.log.Stdout())
		},
	}
	cmd.Flags().BoolVar(&env, "env", false, "List the environment variables read instead")
	return cmd
}
