package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/siteswap/internal/config"
	"github.com/katalvlaran/siteswap/internal/scheduledoc"
	"github.com/katalvlaran/siteswap/internal/style"
	"github.com/katalvlaran/siteswap/orbit"
)

func newOrbitsCmd(a *app) *cobra.Command {
	var rebuild bool

	cmd := &cobra.Command{
		Use:   "orbits FILE",
		Short: "Split a schedule into its orbits",
		Long: `Split a schedule into orbits, the groups of slots that only pass objects
among themselves. Each orbit is printed as a schedule of the same period where
slots outside the orbit hold a zero toss.

With strict mode on (the default) the schedule is validated first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOrbits(cmd, args[0], rebuild)
		},
	}
	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "always print reduced schedules, even for a single orbit")

	return cmd
}

func (a *app) runOrbits(cmd *cobra.Command, path string, rebuild bool) error {
	s, notation, err := loadSchedule(path)
	if err != nil {
		return err
	}

	var opts []orbit.Option
	if a.cfg.Strict {
		opts = append(opts, orbit.WithValidation())
	}
	if rebuild {
		opts = append(opts, orbit.WithRebuild())
	}

	orbits, err := orbit.Decompose(s, notation, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Info("schedule decomposed", zap.String("path", path), zap.Int("orbits", len(orbits)))

	out := cmd.OutOrStdout()
	if a.cfg.Format == config.FormatYAML {
		docs := make([]*scheduledoc.Document, len(orbits))
		for k, o := range orbits {
			docs[k] = scheduledoc.FromSchedule(o.Throws, notation)
		}
		return scheduledoc.Encode(out, docs...)
	}

	for k, o := range orbits {
		fmt.Fprintf(out, "%s %s\n", style.Header.Render(fmt.Sprintf("orbit %d", k)), style.Dim.Render(fmt.Sprint(o.Slots)))
		fmt.Fprint(out, style.RenderSchedule(o.Throws))
	}

	return nil
}
