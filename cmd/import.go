package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <snapshot.json>",
	Short: "Validate and store a score snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := buildLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		// Parse both validates the document and surfaces shape problems
		// before anything is persisted.
		snap, problems, err := assessment.Parse(raw)
		if err != nil {
			return err
		}
		for _, p := range problems {
			log.Warn("malformed assessment entry in imported snapshot",
				zap.String("assessment", string(p.Assessment)),
				zap.String("reason", p.Reason),
			)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		takenAt := snap.TakenAt
		if takenAt.IsZero() {
			takenAt = time.Now().UTC()
		}
		rec := &store.SnapshotRecord{
			PersonID: snap.PersonID,
			TakenAt:  takenAt,
			Payload:  raw,
		}
		if err := st.Snapshots().Save(cmd.Context(), rec); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported snapshot %s for person %s\n", rec.ID, rec.PersonID)
		return nil
	},
}
