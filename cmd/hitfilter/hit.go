package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/hitfilter/internal/domain/scene"
	"github.com/kailas-cloud/hitfilter/internal/usecase/hit"
)

func hitCmd(a *app) *cobra.Command {
	var (
		sceneName string
		pointText string
		isPlayer  bool
	)
	cmd := &cobra.Command{
		Use:     "hit",
		Short:   "Find the scene node closest to a point",
		Args:    cobra.NoArgs,
		PreRunE: a.setup,
		RunE: a.run(func(cmd *cobra.Command) error {
			point, err := parsePoint(pointText)
			if err != nil {
				return err
			}
			world, err := a.loadWorld()
			if err != nil {
				return err
			}
			root, err := world.Scene(sceneName)
			if err != nil {
				return err
			}

			h, ok := hit.New(a.patterns).FindClosest(cmd.Context(), root, point, isPlayer)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", h.Node.Name(), h.DistSq)
			return nil
		}),
	}
	cmd.Flags().StringVar(&sceneName, "scene", "", "scene graph name in the world fixture")
	cmd.Flags().StringVar(&pointText, "point", "0,0,0", "query point as x,y,z")
	cmd.Flags().BoolVar(&isPlayer, "player", false, "first-person player mode")
	_ = cmd.MarkFlagRequired("scene")
	return cmd
}

func parsePoint(s string) (scene.Point3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return scene.Point3{}, fmt.Errorf("point %q: want x,y,z", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return scene.Point3{}, fmt.Errorf("point %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return scene.Point3{X: v[0], Y: v[1], Z: v[2]}, nil
}
