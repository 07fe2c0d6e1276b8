package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"roguewar-client/internal/galaxy"
	"roguewar-client/internal/logger"
)

func (a *app) mapCommand() *cobra.Command {
	var owner, format, out string

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Show the current star map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := ParseFormat(format, out != "")
			if err != nil {
				return err
			}
			m, err := a.api().StarMap(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch star map: %w", err)
			}
			if owner != "" {
				m = &galaxy.StarMap{Systems: m.FindSystemsByOwner(owner)}
			}
			logMapStats(m)
			return emit(cmd.OutOrStdout(), out, f, m, func() table { return starMapTable(m) })
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "only systems held by this faction")
	cmd.Flags().StringVar(&format, "format", "", "output format: json, yaml or text")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func logMapStats(m *galaxy.StarMap) {
	logger.Section("Star map")
	logger.Stats("systems", len(m.Systems))
	counts := m.OwnerCounts()
	owners := make([]string, 0, len(counts))
	for o := range counts {
		owners = append(owners, o)
	}
	sort.Strings(owners)
	for _, o := range owners {
		logger.Stats(o, counts[o])
	}
}

func starMapTable(m *galaxy.StarMap) table {
	t := table{headers: []string{"system", "owner", "players", "event", "factions"}}
	for _, s := range m.Systems {
		event := ""
		if s.HasEvent() {
			event = strconv.Itoa(s.MarkerType)
		}
		if s.ImmuneFromWar {
			event = strings.TrimSpace(event + " immune")
		}
		factions := make([]string, 0, len(s.Factions))
		for _, f := range s.Factions {
			factions = append(factions, fmt.Sprintf("%s %s%%", f.PrettyName(), formatFloat(f.Control)))
		}
		t.rows = append(t.rows, []string{s.Name, s.Owner, strconv.Itoa(s.Players), event, strings.Join(factions, ", ")})
	}
	return t
}
