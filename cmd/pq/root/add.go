package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
	"pixelquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var diff int
	var category string
	var period string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			p, err := engine.ParsePeriod(period)
			if err != nil {
				return err
			}
			cat, err := svc.ResolveCategory(ctx, category)
			if err != nil {
				return err
			}

			t, err := svc.CreateTask(ctx, engine.CreateTaskInput{
				Title:      args[0],
				CategoryID: cat.ID,
				Difficulty: d,
				Period:     p,
			})
			if err != nil {
				if errors.Is(err, engine.ErrEmptyTitle) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing added (empty title)."))
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconTask+" Added"), t.ID, t.Title,
				ui.Muted.Render(fmt.Sprintf("[%s, diff %d, +%d PT, %s]", cat.Name, t.Difficulty, t.Points, t.Period)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&diff, "diff", "d", 1, "Difficulty (1-3)")
	cmd.Flags().StringVarP(&category, "cat", "c", "Inbox", "Category name or id")
	cmd.Flags().StringVarP(&period, "period", "p", "daily", "Period (daily|once)")

	return cmd
}
