package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"roguewar-client/internal/dataobj"
	apperr "roguewar-client/internal/errors"
	"roguewar-client/internal/galaxy"
	"roguewar-client/internal/logger"
)

const (
	kindMap       = "map"
	kindConstants = "constants"
	kindGlobals   = "globals"
)

func (a *app) loadCommand() *cobra.Command {
	var kind, format, out string

	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Read a saved JSON dump and print it",
		Long: `load reads a JSON dump written by --out (or by any other client) in
UTF-8, UTF-16 or UTF-32 and prints it in the requested format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ParseFormat(format, out != "")
			if err != nil {
				return err
			}
			path := args[0]

			var (
				obj  dataobj.Object
				text func() table
			)
			switch strings.ToLower(kind) {
			case kindMap:
				m := &galaxy.StarMap{}
				obj, text = m, func() table { return starMapTable(m) }
			case kindConstants:
				c := &galaxy.StarMapConstants{}
				obj, text = c, func() table {
					c.MapAdjacents(a.api().GlobalData().SupportRadius)
					return constantsTable(c.Systems)
				}
			case kindGlobals:
				g := &galaxy.GlobalData{}
				obj, text = g, func() table {
					return table{headers: []string{"field", "value"}, rows: describeRows(g)}
				}
			default:
				return apperr.Validationf("unknown kind %q (want map, constants or globals)", kind)
			}

			if err := dataobj.LoadFile(obj, path); err != nil {
				return err
			}
			logger.Info("Load", fmt.Sprintf("read %s from %s", obj.TypeTag(), path))
			return emit(cmd.OutOrStdout(), out, f, obj, text)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindMap, "what the file holds: map, constants or globals")
	cmd.Flags().StringVar(&format, "format", "", "output format: json, yaml or text")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func describeRows(o dataobj.Object) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSuffix(dataobj.Describe(o), "\n"), "\n") {
		name, value, _ := strings.Cut(line, " : ")
		rows = append(rows, []string{name, value})
	}
	return rows
}
