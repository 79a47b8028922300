package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/store"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage stored score snapshots",
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a person's stored snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		person, _ := cmd.Flags().GetString("person")
		if person == "" {
			return fmt.Errorf("--person is required")
		}
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.Snapshots().List(cmd.Context(), person, limit)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no snapshots")
			return nil
		}
		for _, rec := range recs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  taken %s  imported %s\n",
				rec.ID,
				rec.TakenAt.Format("2006-01-02 15:04"),
				rec.ImportedAt.Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

var snapshotsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but a person's most recent snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		person, _ := cmd.Flags().GetString("person")
		if person == "" {
			return fmt.Errorf("--person is required")
		}
		keep, _ := cmd.Flags().GetInt("keep")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Snapshots().Prune(cmd.Context(), person, keep); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pruned to %d snapshot(s) for person %s\n", keep, person)
		return nil
	},
}

func init() {
	snapshotsListCmd.Flags().String("person", "", "Person identifier")
	snapshotsListCmd.Flags().Int("limit", 0, "Maximum snapshots to list (0 = all)")
	snapshotsPruneCmd.Flags().String("person", "", "Person identifier")
	snapshotsPruneCmd.Flags().Int("keep", 5, "Number of snapshots to keep")

	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsPruneCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
