package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetrix/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the active key bindings",
	Long:  `Prints every action and the keys bound to it after loading the config.`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bindings := tui.NewKeyMap(cfg.Keys).Bindings()

	labels := make([]string, len(bindings))
	maxKeyLen := 4 // "Keys" header
	for i, b := range bindings {
		labels[i] = b.Help().Key
		if labels[i] == "" {
			labels[i] = "(unbound)"
		}
		maxKeyLen = max(maxKeyLen, len(labels[i]))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "Keys", "Action")
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "----", "------")
	for i, b := range bindings {
		fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, labels[i], b.Help().Desc)
	}
	return nil
}
