// Package commands implements the setexpr command line: inspecting,
// evaluating and comparing set expressions, and checking challenge packs.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gosets/internal/config"
	"gosets/internal/log"
	"gosets/pkg/setexpr"
)

const (
	HomeFlag      = "home"
	SetsFlag      = "sets"
	LayoutFlag    = "layout"
	LogLevelFlag  = "log-level"
	LogFormatFlag = "log-format"
)

// env is the state shared by all subcommands once the root command's
// pre-run has loaded the configuration.
type env struct {
	v        *viper.Viper
	conf     *config.Config
	logger   log.Logger
	universe *setexpr.Universe
}

// RootCommand constructs the setexpr entry point. defaultHome is where the
// optional setexpr.{yaml,toml,json} config file is looked up.
func RootCommand(defaultHome string) *cobra.Command {
	e := &env{v: viper.New(), logger: log.NewNopLogger()}

	cmd := &cobra.Command{
		Use:          "setexpr",
		Short:        "Evaluate and compare set-algebra expressions over named sets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
	}
	cmd.PersistentFlags().String(HomeFlag, defaultHome, "directory holding the setexpr config file")
	cmd.PersistentFlags().String(SetsFlag, "", "comma separated set names (default A,B,C)")
	cmd.PersistentFlags().String(LayoutFlag, "", "region numbering: venn3 or canonical (default venn3 for three sets, canonical otherwise)")
	cmd.PersistentFlags().String(LogLevelFlag, "", "log level: debug, info or error (default info)")
	cmd.PersistentFlags().String(LogFormatFlag, "", "log format: plain or json (default plain)")

	cmd.AddCommand(
		newTokensCmd(e),
		newParseCmd(e),
		newEvalCmd(e),
		newEquivCmd(e),
		newRegionsCmd(e),
		newJSONLogicCmd(e),
		newChallengesCmd(e),
	)
	return cmd
}

// load binds the flags, reads the config and builds the logger and
// universe for the command about to run.
func (e *env) load(cmd *cobra.Command) error {
	for _, name := range []string{SetsFlag, LayoutFlag, LogLevelFlag, LogFormatFlag} {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := e.v.BindPFlag(name, f); err != nil {
			return err
		}
	}

	home, err := cmd.Flags().GetString(HomeFlag)
	if err != nil {
		return err
	}
	conf, err := config.Load(e.v, home)
	if err != nil {
		return err
	}

	logger, err := log.NewLogger(cmd.ErrOrStderr(), conf.LogFormat, conf.LogLevel)
	if err != nil {
		return err
	}
	u, err := conf.Universe()
	if err != nil {
		return err
	}

	e.conf = conf
	e.logger = logger.With("module", "main")
	e.universe = u
	e.logger.Debug("loaded config", "sets", conf.Sets, "layout", u.Layout(), "config", e.v.ConfigFileUsed())
	return nil
}
