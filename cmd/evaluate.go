package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/insight"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/store"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [snapshot.json]",
	Short: "Derive insights from a score snapshot",
	Long: "Evaluates every insight engine against a snapshot read from a JSON file, " +
		"or against a person's latest stored snapshot with --person, and prints the " +
		"composite result as JSON.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := buildLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		raw, err := snapshotBytes(cmd, args)
		if err != nil {
			return err
		}

		snap, problems, err := assessment.Parse(raw)
		if err != nil {
			return err
		}
		for _, p := range problems {
			log.Warn("malformed assessment entry degraded to missing",
				zap.String("assessment", string(p.Assessment)),
				zap.String("reason", p.Reason),
			)
		}

		result := insight.NewService(reg, log).Evaluate(snap)

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	evaluateCmd.Flags().String("person", "", "Evaluate the latest stored snapshot for this person")
}

// snapshotBytes reads the snapshot document from the file argument or, with
// --person, from the store.
func snapshotBytes(cmd *cobra.Command, args []string) ([]byte, error) {
	person, _ := cmd.Flags().GetString("person")

	switch {
	case len(args) == 1 && person != "":
		return nil, fmt.Errorf("pass either a snapshot file or --person, not both")
	case len(args) == 1:
		return os.ReadFile(args[0])
	case person != "":
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return nil, err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return nil, err
		}
		defer st.Close()

		rec, err := st.Snapshots().Latest(cmd.Context(), person)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("no stored snapshot for person %q", person)
		}
		return rec.Payload, nil
	default:
		return nil, fmt.Errorf("pass a snapshot file or --person")
	}
}
