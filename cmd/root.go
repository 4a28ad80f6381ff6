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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joomcode/errorx"
	"github.com/pingcap/pwgen/pkg/config"
	"github.com/pingcap/pwgen/pkg/localdata"
	"github.com/pingcap/pwgen/pkg/logger"
	logprinter "github.com/pingcap/pwgen/pkg/logger/printer"
	"github.com/pingcap/pwgen/pkg/tui"
	"github.com/pingcap/pwgen/pkg/utils"
	"github.com/pingcap/pwgen/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	errNS          = errorx.NewNamespace("cmd")
	errCheckFailed = errNS.NewType("check_failed", utils.ErrTraitPreCheck)
)

type app struct {
	root *cobra.Command
	log  *logprinter.Logger

	cfg        *config.Config
	configPath string
}

func newApp() *app {
	a := &app{
		log: logprinter.NewLogger(""),
		cfg: config.Default(),
	}

	rootCmd := &cobra.Command{
		Use:   "pwgen",
		Short: "Generate random passwords satisfying composition rules",
		Long: `Generate a random password from the selected alphabet. Candidates are
drawn with a cryptographically secure source until one satisfies every
length, category and adjacency rule, or --max-retry candidates were drawn.

Options are read from the built-in defaults, then the config file
($PWGEN_HOME/pwgen.toml or --config), then PWGEN_* environment
variables, then the command line.`,
		Example: `  pwgen --pass-min 8 --pass-max 8 --digits-min 4 --digits-max 4
  pwgen --symbols 'abc123' --pass-min 6 --pass-max 10
  pwgen --clipboard --seconds-in-clipboard 15`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log.SetStdout(cmd.OutOrStdout())
			a.log.SetStderr(cmd.ErrOrStderr())
			if err := a.load(cmd); err != nil {
				return err
			}
			a.log.SetDisplayModeFromString(a.cfg.Format)
			if a.log.GetDisplayMode() == logprinter.DisplayModeDefault {
				if f, ok := cmd.OutOrStdout().(*os.File); !ok || !tui.IsTerminal(f) {
					a.log.SetDisplayMode(logprinter.DisplayModePlain)
					color.NoColor = true
				}
			}
			return nil
		},
	}

	tui.BeautifyCobraUsageAndHelp(rootCmd)

	pfs := rootCmd.PersistentFlags()
	pfs.StringVar(&a.configPath, "config", "", "Path of the TOML config file (default $PWGEN_HOME/pwgen.toml)")
	pfs.StringVar(&a.cfg.Format, "format", a.cfg.Format, "The format of output, available values are [default, plain, json]")
	addAlphabetFlags(pfs, a.cfg)
	addConstraintFlags(pfs, a.cfg)
	addGeneratorFlags(pfs, a.cfg)

	gen := &generateOptions{}
	rootCmd.Flags().BoolVar(&gen.clipboard, "clipboard", false, "Copy the password to the clipboard instead of printing it")
	rootCmd.Flags().StringVar(&gen.symbols, "symbols", "", "Use exactly these symbols as the alphabet, ignoring the alphabet flags")
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.generate(cmd.Context(), gen)
	}

	rootCmd.AddCommand(
		a.newCheckCmd(),
		a.newSimpleCmd(),
		a.newConfigCmd(),
		newCompletionCmd(),
	)

	a.root = rootCmd
	return a
}

// load merges the config file and the environment below the flags the user set
func (a *app) load(cmd *cobra.Command) error {
	fs := cmd.Flags()
	changed := changedFlags(fs)

	path, mustExist := a.configPath, true
	if path == "" {
		path, mustExist = localdata.InitProfile().ConfigPath(), false
	}
	cfg, err := config.Load(path, mustExist)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cfg, nil); err != nil {
		return err
	}
	*a.cfg = *cfg

	if err := reapplyFlags(fs, changed); err != nil {
		return err
	}
	zap.L().Debug("Effective config",
		zap.String("file", path),
		zap.Any("alphabet", a.cfg.Alphabet),
		zap.Any("constraints", a.cfg.Constraints),
		zap.Any("generator", a.cfg.Generator))
	return nil
}

func (a *app) printError(err error) {
	stderr := a.log.Stderr()
	if a.log.GetDisplayMode() == logprinter.DisplayModeJSON {
		obj := struct {
			Code int    `json:"exit_code"`
			Err  string `json:"error"`
		}{
			Code: 1,
			Err:  err.Error(),
		}
		data, _ := json.Marshal(obj)
		fmt.Fprintln(stderr, string(data))
		return
	}

	_, _ = tui.ColorErrorMsg.Fprintf(stderr, "\nError: %s", tui.FormatError(err))
	if !errorx.HasTrait(err, utils.ErrTraitPreCheck) && errorx.Cast(err) != nil {
		logger.OutputDebugLog("pwgen")
	}
	if suggestion := tui.ExtractSuggestion(err); len(suggestion) > 0 {
		a.log.Errorf("\n%s\n", suggestion)
	}
}

// Execute executes the root command
func Execute() {
	logger.InitGlobalLogger()
	zap.L().Info("Execute command", zap.String("command", strings.Join(os.Args, " ")))

	a := newApp()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := a.root.ExecuteContext(ctx)
	stop()

	code := 0
	if err != nil {
		code = 1
		a.printError(err)
	}
	zap.L().Info("Execute command finished", zap.Int("code", code), zap.Error(err))

	color.Unset()
	if code != 0 {
		os.Exit(code)
	}
}
