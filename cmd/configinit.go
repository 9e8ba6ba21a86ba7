package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hda-infdl/partner-scout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config.yaml with the default settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		const path = "config.yaml"
		if _, err := os.Stat(path); err == nil {
			return eris.Errorf("config init: %s already exists", path)
		}

		// Expand dotted default keys into a nested document.
		tree := make(map[string]any)
		for key, val := range config.Defaults() {
			parts := strings.Split(key, ".")
			node := tree
			for _, p := range parts[:len(parts)-1] {
				child, ok := node[p].(map[string]any)
				if !ok {
					child = make(map[string]any)
					node[p] = child
				}
				node = child
			}
			node[parts[len(parts)-1]] = val
		}

		raw, err := yaml.Marshal(tree)
		if err != nil {
			return eris.Wrap(err, "config init: marshal defaults")
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return eris.Wrapf(err, "config init: write %s", path)
		}

		fmt.Printf("%s geschrieben\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
