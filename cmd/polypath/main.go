// Command polypath is a thin CLI front-end over the polypath query
// pipeline: read a polygon and two points, run the shortest-path query,
// print the resulting polyline.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/polypath/polypath/geom"
	"github.com/polypath/polypath/polypath"
)

// polygonFile is the shape of the --polygon JSON input.
type polygonFile struct {
	Ring [][2]float64 `json:"ring"`
}

func main() {
	cmd := &cli.Command{
		Name:  "polypath",
		Usage: "shortest path between two points inside a simple polygon",
		Commands: []*cli.Command{
			runCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "compute the shortest path between two points",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "polygon",
				Usage:    `path to a JSON file shaped {"ring": [[x,y], ...]}`,
				Required: true,
			},
			&cli.FloatSliceFlag{
				Name:     "source",
				Usage:    "source point as x,y",
				Required: true,
			},
			&cli.FloatSliceFlag{
				Name:     "dest",
				Usage:    "destination point as x,y",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log each phase of the query to stderr",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("verbose") {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			ring, err := readRing(cmd.String("polygon"))
			if err != nil {
				return fmt.Errorf("reading polygon: %w", err)
			}

			src, err := pointFromSlice(cmd.FloatSlice("source"))
			if err != nil {
				return fmt.Errorf("parsing --source: %w", err)
			}
			dst, err := pointFromSlice(cmd.FloatSlice("dest"))
			if err != nil {
				return fmt.Errorf("parsing --dest: %w", err)
			}

			path, err := polypath.Query(ring, src, dst)
			if err != nil {
				return err
			}

			return json.NewEncoder(os.Stdout).Encode(pathToCoords(path))
		},
	}
}

func readRing(path string) ([]geom.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf polygonFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, err
	}

	ring := make([]geom.Point, len(pf.Ring))
	for i, xy := range pf.Ring {
		ring[i] = geom.Point{X: xy[0], Y: xy[1]}
	}
	return ring, nil
}

func pointFromSlice(xy []float64) (geom.Point, error) {
	if len(xy) != 2 {
		return geom.Point{}, fmt.Errorf("expected exactly 2 values, got %d", len(xy))
	}
	return geom.Point{X: xy[0], Y: xy[1]}, nil
}

func pathToCoords(path polypath.Path) [][2]float64 {
	coords := make([][2]float64, len(path))
	for i, p := range path {
		coords[i] = [2]float64{p.X, p.Y}
	}
	return coords
}
