package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// trainerInfo is the JSON form of the trainer command output.
type trainerInfo struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Hometown  string `json:"hometown"`
	Roster    string `json:"roster"`
	Count     int    `json:"count"`
}

func newTrainerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trainer",
		Short: "Show the session trainer and roster size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.openTrainer()
			if err != nil {
				return err
			}
			info := trainerInfo{
				SessionID: tr.ID,
				Name:      tr.Name,
				Hometown:  tr.Hometown,
				Roster:    a.rosterPath(),
				Count:     tr.Pokedex.Len(),
			}

			if a.flags.jsonMode {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return sysError(fmt.Errorf("marshal JSON: %w", err))
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			w := newTable(cmd)
			fmt.Fprintf(w, "Session:\t%s\n", info.SessionID)
			fmt.Fprintf(w, "Trainer:\t%s\n", info.Name)
			fmt.Fprintf(w, "Hometown:\t%s\n", info.Hometown)
			fmt.Fprintf(w, "Roster:\t%s (%d pokemon)\n", info.Roster, info.Count)
			return w.Flush()
		},
	}
}
