package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperr "roguewar-client/internal/errors"
	"roguewar-client/internal/galaxy"
)

func (a *app) constantsCommand() *cobra.Command {
	var (
		force  bool
		system string
		radius float64
		jumps  int
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Show static system data and adjacency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := ParseFormat(format, out != "")
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("radius") {
				if radius <= 0 {
					return apperr.Validationf("--radius must be > 0")
				}
				a.cfg.SupportRadius = radius
			}
			consts, err := a.api().SystemConstants(cmd.Context(), force)
			if err != nil {
				return fmt.Errorf("fetch system constants: %w", err)
			}

			if system == "" {
				return emit(cmd.OutOrStdout(), out, f, consts, func() table { return constantsTable(consts.Systems) })
			}

			c, ok := consts.FindSystem(system)
			if !ok {
				return apperr.NotFoundf("system %q not found", system)
			}
			if jumps > 0 {
				report := newReachReport(consts, c.Name, jumps)
				return emit(cmd.OutOrStdout(), out, f, report, report.table)
			}
			return emit(cmd.OutOrStdout(), out, f, c, func() table { return constantsTable([]*galaxy.StarSystemConst{c}) })
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "refetch even when constants are already loaded")
	cmd.Flags().StringVar(&system, "system", "", "only this system")
	cmd.Flags().Float64Var(&radius, "radius", galaxy.DefaultSupportRadius, "support radius used for adjacency")
	cmd.Flags().IntVar(&jumps, "jumps", 0, "with --system, list systems within this many jumps")
	cmd.Flags().StringVar(&format, "format", "", "output format: json, yaml or text")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func constantsTable(systems []*galaxy.StarSystemConst) table {
	t := table{headers: []string{"system", "x", "y", "original owner", "adjacent"}}
	for _, c := range systems {
		t.rows = append(t.rows, []string{
			c.Name,
			formatFloat(c.PosX),
			formatFloat(c.PosY),
			c.OriginalOwner,
			strings.Join(c.AdjacentSystems(), ", "),
		})
	}
	return t
}
