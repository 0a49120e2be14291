// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/advancecard/internal/config"
)

var (
	configGlobal bool
	configOrigin bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit advancecard configuration",
	Long: `Inspect and edit advancecard configuration.

Settings are layered: built-in defaults, the global file
(~/.config/advancecard/config.yaml or $ADVANCECARD_CONFIG), the working
directory's .advancecard.yaml, then ADVANCECARD_LOCALE and ADVANCECARD_FORMAT
from the environment or a .env file. Command-line flags win over all of them.

Edits rewrite the target file as plain YAML; comments are not kept.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a key",
	Long: `Print the effective value of a dot-notation key. Sections print as YAML.

  advancecard config get locale
  advancecard config get --origin viewport.width
  advancecard config get --global output_format`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a key to the repo or global config file",
	Long: `Write a key to .advancecard.yaml, or the global file with --global.

The value is read as a YAML scalar, so 480 is a number and true a bool.
The edited file is validated before it is written.

  advancecard config set locale de-DE
  advancecard config set viewport.width 480
  advancecard config set --global settings card.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a key from the repo or global config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file that set and unset edit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), configTarget())
		return err
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every effective key and the layer it comes from",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	for _, c := range []*cobra.Command{configGetCmd, configSetCmd, configUnsetCmd, configPathCmd} {
		c.Flags().BoolVar(&configGlobal, "global", false, "use the global config file only")
	}
	configGetCmd.Flags().BoolVar(&configOrigin, "origin", false, "also print the layer that supplies the value")

	configCmd.AddCommand(configGetCmd, configSetCmd, configUnsetCmd, configPathCmd, configListCmd)
}

// configTarget is the file set and unset edit.
func configTarget() string {
	if configGlobal {
		return config.GlobalConfigPath()
	}
	return filepath.Join(".", config.FileName)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if err := config.ValidateKeyPath(key); err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}

	var (
		val    any
		source string
	)
	if configGlobal {
		cfg, err := config.LoadGlobal()
		if err != nil {
			return exitError(ExitInvalidArgs, "advancecard: %v", err)
		}
		if val, err = config.GetValue(cfg, key); err == nil {
			source = config.SourceGlobal
		}
	} else {
		layers, err := config.Layers(".")
		if err != nil {
			return exitError(ExitInvalidArgs, "advancecard: %v", err)
		}
		val, source = config.Origin(layers, key)
		if _, isSection := val.(map[string]any); isSection {
			// Sections merge field by field, so no single layer owns them.
			cfg, err := config.Resolve(".")
			if err != nil {
				return exitError(ExitInvalidArgs, "advancecard: %v", err)
			}
			val, _ = config.GetValue(cfg, key)
			source = "merged"
		}
	}
	if source == "" {
		return exitError(ExitInvalidArgs, "advancecard: %s is not set", key)
	}

	w := cmd.OutOrStdout()
	if err := printValue(w, val); err != nil {
		return err
	}
	if configOrigin {
		_, _ = fmt.Fprintln(w, sourceLabel(source))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := config.ValidateKeyPath(key); err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}
	return editConfig(cmd, func(data map[string]any) (string, error) {
		if err := config.SetValue(data, key, value); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = %s", key, value), nil
	})
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := args[0]
	if err := config.ValidateKeyPath(key); err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}
	return editConfig(cmd, func(data map[string]any) (string, error) {
		if !config.UnsetValue(data, key) {
			return "", fmt.Errorf("%s is not set in %s", key, configTarget())
		}
		return "unset " + key, nil
	})
}

// editConfig loads the target file, applies edit, validates the result and
// writes it back. Nothing is written when any step fails.
func editConfig(cmd *cobra.Command, edit func(map[string]any) (string, error)) error {
	path := configTarget()
	data, err := config.LoadRaw(path)
	if err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}
	summary, err := edit(data)
	if err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}
	if err := config.CheckRaw(data); err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}
	if err := config.WriteFile(path, data); err != nil {
		return exitError(ExitInvalidArgs, "advancecard: cannot write %s (%v)", path, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", summary, path)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	layers, err := config.Layers(".")
	if err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}

	winner := make(map[string]string)
	values := make(map[string]any)
	for _, l := range layers {
		m, err := config.ToMap(l.Config)
		if err != nil {
			return err
		}
		for k, v := range config.FlattenMap(m, "") {
			values[k], winner[k] = v, l.Source
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := cmd.OutOrStdout()
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, values[k], sourceLabel(winner[k]))
	}
	return nil
}

// printValue writes scalars on one line and sections as YAML.
func printValue(w io.Writer, val any) error {
	if m, ok := val.(map[string]any); ok {
		out, err := yaml.Marshal(m)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	_, err := fmt.Fprintln(w, val)
	return err
}

var sourceColors = map[string]*color.Color{
	config.SourceDefault: color.New(color.Faint),
	config.SourceGlobal:  color.New(color.FgCyan),
	config.SourceRepo:    color.New(color.FgGreen),
	config.SourceEnv:     color.New(color.FgYellow),
}

func sourceLabel(source string) string {
	label := "(" + source + ")"
	if c, ok := sourceColors[source]; ok {
		return c.Sprint(label)
	}
	return label
}
