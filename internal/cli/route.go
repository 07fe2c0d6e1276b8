package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperr "roguewar-client/internal/errors"
	"roguewar-client/internal/logger"
)

func (a *app) routeCommand() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Count jumps between two systems",
		Long: `route counts the jumps between two systems over the adjacency graph.

With --owner every system on the way, FROM and TO included, must currently be
held by that faction, which answers whether a supply line exists.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			ctx := cmd.Context()

			consts, err := a.api().SystemConstants(ctx, false)
			if err != nil {
				return fmt.Errorf("fetch system constants: %w", err)
			}
			for _, name := range args {
				if _, ok := consts.FindSystem(name); !ok {
					return apperr.NotFoundf("system %q not found", name)
				}
			}

			u := consts.Universe(nil)
			if owner != "" {
				current, err := a.api().StarMap(ctx)
				if err != nil {
					logger.Warn("Route", fmt.Sprintf("star map unavailable, using original owners: %v", err))
				} else {
					u = consts.Universe(current)
				}
			}

			jumps := u.ShortestPathOwnedBy(from, to, owner)
			switch {
			case jumps < 0 && owner != "":
				cmd.Printf("%s -> %s: no route through %s space (%s holds %d systems)\n",
					from, to, owner, owner, len(u.HeldBy(owner)))
			case jumps < 0:
				cmd.Printf("%s -> %s: unreachable\n", from, to)
			default:
				cmd.Printf("%s -> %s: %d jumps\n", from, to, jumps)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "only travel through systems held by this faction")
	return cmd
}
