package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/message"

	"github.com/gogpu/glmath"
)

// app carries the state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	printer *message.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:   "glmathdemo",
		Short: "Step glmath demo scenes and print their matrices",
		Long: `glmathdemo drives the glmath demo scenes without a GPU.

It prints the model, model-inverse and MVP matrices of every draw call, the
values a renderer would upload as uniforms.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("lang", "en", "language for number formatting (BCP 47)")

	root.AddCommand(
		newScenesCmd(a),
		newFramesCmd(a),
		newInspectCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup binds the flags of the running command, loads the configuration and
// installs the logger and printer.
func (a *app) setup(cmd *cobra.Command) error {
	// flag names map to config keys with dashes turned into underscores
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := a.v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}

	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	tag, err := cfg.Language()
	if err != nil {
		return err
	}

	glmath.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})))
	if used := a.v.ConfigFileUsed(); used != "" {
		glmath.Logger().Info("glmathdemo: using config file", "path", used)
	}

	a.cfg = cfg
	a.printer = message.NewPrinter(tag)
	return nil
}
