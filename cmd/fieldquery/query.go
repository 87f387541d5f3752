package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leveldesign/field"
)

func newSideCmd(cfg *config) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "side X Y",
		Short: "Classify a layer space point against the fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args)
			if err != nil {
				return err
			}
			fs, err := cfg.fields(name)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, n := range fs {
				fmt.Fprintf(w, "%s\t%s\n", n.Name, n.Field.Side(p))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "field", "f", "", "only query the named field")
	return cmd
}

func newClosestCmd(cfg *config) *cobra.Command {
	var (
		name  string
		outer bool
	)
	cmd := &cobra.Command{
		Use:   "closest X Y",
		Short: "Print the closest boundary point of each field",
		Long: "Print the point of each field's inner boundary closest to X Y, " +
			"or of the outer boundary with --outer. Fields without a boundary print -.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args)
			if err != nil {
				return err
			}
			fs, err := cfg.fields(name)
			if err != nil {
				return err
			}
			side := field.Inside
			if outer {
				side = field.Outside
			}
			w := cmd.OutOrStdout()
			for _, n := range fs {
				c, ok := n.Field.ClosestPoint(p, side)
				if !ok {
					fmt.Fprintf(w, "%s\t-\n", n.Name)
					continue
				}
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\n", n.Name, c.X, c.Y, c.Distance(p))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "field", "f", "", "only query the named field")
	cmd.Flags().BoolVar(&outer, "outer", false, "use the outer boundary")
	return cmd
}

var errNotAccelerated = errors.New("field has no grid")

func cellRune(s field.Side) byte {
	switch s {
	case field.Inside:
		return 'I'
	case field.Outside:
		return 'O'
	default:
		return '?'
	}
}

func newGridCmd(cfg *config) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the grid of an accelerated polygon",
		Long: "Print the cells of an accelerated polygon's grid, top row first: " +
			"I for inside, O for outside and ? for cells on the boundary.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := cfg.lookup(name)
			if err != nil {
				return err
			}
			a, ok := f.(*field.GridAccelerator)
			if !ok {
				return fmt.Errorf("%s: %w", name, errNotAccelerated)
			}

			g := a.Grid()
			n := g.Subdivision()
			w := cmd.OutOrStdout()
			var row strings.Builder
			for y := n - 1; y >= 0; y-- {
				row.Reset()
				for x := range n {
					row.WriteByte(cellRune(g.At(x, y).Side))
				}
				fmt.Fprintln(w, row.String())
			}
			fmt.Fprintf(w, "bounds %v cell %v\n", g.Bounds(), g.CellSize())
			fmt.Fprintf(w, "inside %d outside %d unknown %d\n",
				g.Count(field.Inside), g.Count(field.Outside), g.Count(field.Unknown))
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "field", "f", "", "name of the accelerated polygon")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}
