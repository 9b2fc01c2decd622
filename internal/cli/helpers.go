// Shared helpers for pokedex CLI commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/paths"
	"github.com/mesh-intelligence/pokedex/internal/pokedex"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// rosterPath returns the roster file for this invocation. The --roster flag
// overrides roster_file from config.yaml.
func (a *app) rosterPath() string {
	name := a.cfg.RosterFile
	if a.flags.roster != "" {
		name = a.flags.roster
	}
	return paths.ResolveRosterPath(a.cfg.DataDir, name)
}

// openTrainer starts a session and loads the roster into its Pokedex. A
// missing roster file is an empty roster.
func (a *app) openTrainer() (*pokedex.Trainer, error) {
	tr := pokedex.NewTrainer(a.cfg.TrainerName, a.cfg.Hometown)
	path := a.rosterPath()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		a.logger.Printf("session %s: no roster at %s", tr.ID, path)
		return tr, nil
	}
	if err := tr.Pokedex.LoadFromFile(path); err != nil {
		return nil, userError(err)
	}
	a.logger.Printf("session %s: loaded %d pokemon from %s", tr.ID, tr.Pokedex.Len(), path)
	return tr, nil
}

// saveTrainer writes the session roster back to the roster file.
func (a *app) saveTrainer(tr *pokedex.Trainer) error {
	path := a.rosterPath()
	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		return sysError(fmt.Errorf("%w: creating data dir: %w", types.ErrIO, err))
	}
	if err := tr.Pokedex.SaveToFile(path); err != nil {
		return classify(err)
	}
	a.logger.Printf("session %s: saved %d pokemon to %s", tr.ID, tr.Pokedex.Len(), path)
	return nil
}

// parseIndex parses a roster index argument.
func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 {
		return 0, userError(fmt.Errorf("invalid index %q (expected a non-negative integer)", arg))
	}
	return i, nil
}

// parseFilter turns key=value arguments into a filter map. Values that
// parse as JSON keep their JSON type; anything else is a string.
func parseFilter(args []string) (map[string]any, error) {
	filter := make(map[string]any)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, userError(fmt.Errorf("invalid filter %q (expected key=value)", arg))
		}
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}
		filter[key] = parsed
	}
	return filter, nil
}

// printPokemon writes one record as JSON.
func printPokemon(cmd *cobra.Command, p *types.Pokemon) error {
	out, err := pokedex.EncodeRecord(p)
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// printRoster writes records as a JSON array or a table depending on
// --json. The table shows roster indexes when withIndex is set.
func (a *app) printRoster(cmd *cobra.Command, pokemon []*types.Pokemon, withIndex bool) error {
	if a.flags.jsonMode {
		out, err := pokedex.EncodeRecords(pokemon)
		if err != nil {
			return sysError(fmt.Errorf("marshal JSON: %w", err))
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := newTable(cmd)
	if withIndex {
		fmt.Fprint(w, "INDEX\t")
	}
	fmt.Fprintln(w, "NO.\tNAME\tTYPE\tTOTAL")
	for i, p := range pokemon {
		if withIndex {
			fmt.Fprintf(w, "%d\t", i)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.NationalNumber, p.Name, p.Type, p.Total)
	}
	return w.Flush()
}
