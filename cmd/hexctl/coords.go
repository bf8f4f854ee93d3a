package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/hextile/internal/network"
	"github.com/gravitas-games/hextile/pkg/hex"
)

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseCoord reads a cell in the given system from its numeric arguments.
func parseCoord(system, layout string, vals []int) (hex.Cube[int], error) {
	c := network.Coord{System: system, Layout: layout}
	switch system {
	case network.SystemCube:
		if len(vals) != 3 {
			return hex.Cube[int]{}, fmt.Errorf("cube takes q r s, got %d values", len(vals))
		}
		c.Q, c.R, c.S = vals[0], vals[1], vals[2]
	case network.SystemAxial:
		if len(vals) != 2 {
			return hex.Cube[int]{}, fmt.Errorf("axial takes q r, got %d values", len(vals))
		}
		c.Q, c.R = vals[0], vals[1]
	default:
		if len(vals) != 2 {
			return hex.Cube[int]{}, fmt.Errorf("%s takes row col, got %d values", system, len(vals))
		}
		c.Row, c.Col = vals[0], vals[1]
	}
	return c.Cube()
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <system> <values...>",
		Short: "Show a cell in every coordinate system",
		Long: `Systems: cube (q r s), axial (q r), double_height (row col),
double_width (row col), offset (row col, needs --layout).`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, _ := cmd.Flags().GetString("layout")
			vals, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			c, err := parseCoord(args[0], layout, vals)
			if err != nil {
				return err
			}

			rep := network.Represent(c)
			if wantJSON(cmd) {
				return printJSON(cmd, rep)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cube:          %v\n", c)
			fmt.Fprintf(out, "axial:         %v\n", rep.Axial)
			fmt.Fprintf(out, "double-height: %v\n", rep.DoubleHeight)
			fmt.Fprintf(out, "double-width:  %v\n", rep.DoubleWidth)
			for _, l := range hex.Layouts {
				fmt.Fprintf(out, "%-14s %v\n", l.String()+":", rep.Offsets[l])
			}
			return nil
		},
	}
	cmd.Flags().String("layout", "odd-pointy", "Offset layout of the input")
	return cmd
}

func centerAndRadius(args []string) (hex.Cube[int], int, error) {
	vals, err := parseInts(args)
	if err != nil {
		return hex.Cube[int]{}, 0, err
	}
	return hex.Axial[int]{Q: vals[0], R: vals[1]}.ToCube(), vals[2], nil
}

func printCells(cmd *cobra.Command, cells []hex.Cube[int]) error {
	axials := make([]hex.Axial[int], len(cells))
	for i, c := range cells {
		axials[i] = c.ToAxial()
	}
	if wantJSON(cmd) {
		return printJSON(cmd, network.CellsResult{Cells: axials})
	}
	for _, a := range axials {
		fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", a.Q, a.R)
	}
	return nil
}

func newRingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ring <q> <r> <radius>",
		Short: "List the cells at exactly radius steps from an axial center",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, k, err := centerAndRadius(args)
			if err != nil {
				return err
			}
			return printCells(cmd, c.Rings(k))
		},
	}
}

func newRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <q> <r> <radius>",
		Short: "List every cell within radius steps of an axial center",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, k, err := centerAndRadius(args)
			if err != nil {
				return err
			}
			return printCells(cmd, c.CubicDistance(k))
		},
	}
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <q1> <r1> <q2> <r2>",
		Short: "Hex distance between two axial cells",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}
			a := hex.Axial[int]{Q: vals[0], R: vals[1]}
			b := hex.Axial[int]{Q: vals[2], R: vals[3]}
			if wantJSON(cmd) {
				return printJSON(cmd, network.DistanceResult{Distance: a.Distance(b)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Distance(b))
			return nil
		},
	}
}
