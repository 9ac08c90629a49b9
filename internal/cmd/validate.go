package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/siteswap"
	"github.com/katalvlaran/siteswap/internal/scheduledoc"
	"github.com/katalvlaran/siteswap/internal/style"
	"github.com/katalvlaran/siteswap/schedule"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check schedule documents for structure and balance",
		Long: `Check that each schedule is well-formed and that every thrown object
lands in exactly one slot. Unbalanced schedules print their balance grid:
positive cells throw more than they catch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runValidate,
	}
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		s, notation, err := loadSchedule(path)
		if err == nil {
			_, err = siteswap.New(s, notation)
		}

		switch {
		case err == nil:
			a.logger.Info("schedule valid", zap.String("path", path),
				zap.Int("period", s.Period()), zap.Int("hands", s.Hands()))
			fmt.Fprintf(out, "%s: %s\n", path, style.Pass.Render("ok"))
			continue
		case errors.Is(err, schedule.ErrBalance):
			fmt.Fprintf(out, "%s: %s %v\n", path, style.Fail.Render("unbalanced"), err)
			if grid, _ := schedule.Balance(s); grid != nil {
				for beat, row := range grid.Rows() {
					fmt.Fprintf(out, "  %s %v\n", style.Dim.Render(fmt.Sprintf("beat %d", beat)), row)
				}
			}
		case errors.Is(err, schedule.ErrStructure):
			fmt.Fprintf(out, "%s: %s %v\n", path, style.Fail.Render("malformed"), err)
		default:
			fmt.Fprintf(out, "%s: %s %v\n", path, style.Fail.Render("error"), err)
		}
		a.logger.Warn("schedule rejected", zap.String("path", path), zap.Error(err))
		failed++
	}

	if failed > 0 {
		return &exitError{code: 1}
	}

	return nil
}

// loadSchedule reads the document at path and returns its schedule and
// notation.
func loadSchedule(path string) (schedule.Schedule, string, error) {
	doc, err := scheduledoc.Load(path)
	if err != nil {
		return nil, "", err
	}
	s, err := doc.Schedule()
	if err != nil {
		return nil, "", err
	}

	return s, doc.Notation, nil
}
