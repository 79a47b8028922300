package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Show the active archetype and lock-pattern catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Archetype triggers:")
		for _, t := range reg.Triggers {
			fmt.Fprintf(out, "  %-22s winner=%-10s %s/%s >= %.0f\n",
				t.Archetype.DisplayName, t.Winner, t.Assessment, t.Subdomain, t.Threshold)
		}
		fmt.Fprintf(out, "  %-22s (no winner match)\n", reg.DefaultArchetype.DisplayName)

		fmt.Fprintln(out, "\nBelief-lock patterns:")
		for _, p := range reg.LockPatterns {
			fmt.Fprintf(out, "  %s\n", p.Name)
			for _, c := range p.Conditions {
				fmt.Fprintf(out, "    %s/%s >= %.0f\n", c.Assessment, c.Subdomain, c.Threshold)
			}
		}
		return nil
	},
}
