package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gravitas-games/hextile/internal/config"
	"github.com/gravitas-games/hextile/internal/gamemap"
	"github.com/gravitas-games/hextile/internal/persistence"
	"github.com/gravitas-games/hextile/pkg/hex"
)

var glyphs = map[gamemap.Terrain]byte{
	gamemap.TerrainNone:     ' ',
	gamemap.TerrainPlains:   '.',
	gamemap.TerrainForest:   'f',
	gamemap.TerrainMountain: '^',
	gamemap.TerrainDesert:   'd',
	gamemap.TerrainSwamp:    's',
	gamemap.TerrainTundra:   't',
	gamemap.TerrainOcean:    '~',
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Server config file to take grid settings from")
	cmd.Flags().String("backend", "", "Storage backend: array, dynamic, table, shaped")
	cmd.Flags().Int("radius", 0, "Map radius")
	cmd.Flags().Int64("seed", 0, "Terrain seed (0 picks one)")
	cmd.Flags().String("shape", "", "Shaped backend layout: rhombus, rectangle, ignore")
}

// gridConfig merges explicitly set flags over the config file, or the defaults.
func gridConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	f := cmd.Flags()
	if f.Changed("backend") {
		cfg.Grid.Backend, _ = f.GetString("backend")
	}
	if f.Changed("radius") {
		cfg.Grid.Radius, _ = f.GetInt("radius")
	}
	if f.Changed("seed") {
		cfg.Grid.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("shape") {
		cfg.Grid.Shape, _ = f.GetString("shape")
	}
	if cfg.Grid.Radius < 0 {
		return nil, fmt.Errorf("radius must not be negative, got %d", cfg.Grid.Radius)
	}
	return cfg, nil
}

func printCounts(w io.Writer, gm *gamemap.GameMap) {
	counts := gm.TerrainCounts()
	terrains := make([]gamemap.Terrain, 0, len(counts))
	for t := range counts {
		terrains = append(terrains, t)
	}
	sort.Slice(terrains, func(i, j int) bool { return counts[terrains[i]] > counts[terrains[j]] })

	total := gm.Len()
	fmt.Fprintf(w, "Backend: %s  Radius: %d  Seed: %d  Tiles: %s\n",
		gm.Backend(), gm.Radius(), gm.Seed(), humanize.Comma(int64(total)))
	for _, t := range terrains {
		fmt.Fprintf(w, "  %-9s %8s  %5.1f%%\n", t, humanize.Comma(int64(counts[t])),
			100*float64(counts[t])/float64(total))
	}
}

// printGrid draws the map one axial row per line, shifted so neighbors line up.
func printGrid(w io.Writer, gm *gamemap.GameMap) {
	radius := gm.Radius()
	var sb strings.Builder
	for r := -radius; r <= radius; r++ {
		sb.Reset()
		sb.WriteString(strings.Repeat(" ", hex.Abs(r)))
		for q := max(-radius, -radius-r); q <= min(radius, radius-r); q++ {
			t, err := gm.Tile(hex.Axial[int]{Q: q, R: r})
			if err != nil {
				t.Terrain = gamemap.TerrainNone
			}
			sb.WriteByte(glyphs[t.Terrain])
			sb.WriteByte(' ')
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Generate a map and print its terrain",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gridConfig(cmd)
			if err != nil {
				return err
			}
			gm, err := gamemap.New(cfg.Grid)
			if err != nil {
				return err
			}
			if err := gm.Generate(); err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd, gm.Tiles())
			}
			printCounts(cmd.OutOrStdout(), gm)
			if grid, _ := cmd.Flags().GetBool("grid"); grid {
				printGrid(cmd.OutOrStdout(), gm)
			}
			return nil
		},
	}
	addGridFlags(cmd)
	cmd.Flags().Bool("grid", false, "Draw the map")
	return cmd
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save, load and inspect map snapshots",
	}
	cmd.PersistentFlags().String("db", "./data/hextile.db", "Snapshot database path")

	save := &cobra.Command{
		Use:   "save",
		Short: "Generate a map and store it as the current snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gridConfig(cmd)
			if err != nil {
				return err
			}
			gm, err := gamemap.New(cfg.Grid)
			if err != nil {
				return err
			}
			if err := gm.Generate(); err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString("db")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			db, err := persistence.Open(path)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.SaveMap(context.Background(), gm); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s tiles to %s\n", humanize.Comma(int64(gm.Len())), path)
			return nil
		},
	}
	addGridFlags(save)

	load := &cobra.Command{
		Use:   "load",
		Short: "Load the snapshot into a map and print its terrain",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("db")
			db, err := persistence.Open(path)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := context.Background()
			meta, err := db.Meta(ctx)
			if err != nil {
				return err
			}
			cfg, err := gridConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Grid.Radius = meta.Radius
			cfg.Grid.Seed = meta.Seed
			if !cmd.Flags().Changed("backend") {
				cfg.Grid.Backend = meta.Backend
			}

			gm, err := gamemap.New(cfg.Grid)
			if err != nil {
				return err
			}
			if _, err := db.LoadMap(ctx, gm); err != nil {
				return err
			}
			printCounts(cmd.OutOrStdout(), gm)
			return nil
		},
	}
	addGridFlags(load)

	info := &cobra.Command{
		Use:   "info",
		Short: "Show snapshot metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("db")
			st, err := os.Stat(path)
			if err != nil {
				return err
			}
			db, err := persistence.Open(path)
			if err != nil {
				return err
			}
			defer db.Close()

			meta, err := db.Meta(context.Background())
			if errors.Is(err, persistence.ErrNoSnapshot) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no snapshot (%s)\n", path, humanize.Bytes(uint64(st.Size())))
				return nil
			}
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd, meta)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:    %s (%s)\n", path, humanize.Bytes(uint64(st.Size())))
			fmt.Fprintf(out, "Backend: %s\n", meta.Backend)
			fmt.Fprintf(out, "Radius:  %d\n", meta.Radius)
			fmt.Fprintf(out, "Seed:    %d\n", meta.Seed)
			fmt.Fprintf(out, "Tiles:   %s\n", humanize.Comma(int64(meta.Tiles)))
			return nil
		},
	}

	cmd.AddCommand(save, load, info)
	return cmd
}
