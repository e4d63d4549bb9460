package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pixelquest/internal/storage"
	"pixelquest/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Long: `Toggle a task between pending and done.

Completing credits the task's points and bumps the streak. Un-completing
debits the points (never below zero); the streak is a lifetime counter and
stays put.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.ToggleTask(ctx, id)
			if err != nil {
				return err
			}

			p, err := svc.ProfileRepo().Get(ctx, storage.MainProfileKey)
			if err != nil {
				return err
			}

			r := res.Result
			if r.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
					ui.Good.Render(ui.IconDone+" Done"), res.Task.ID, res.Task.Title,
					ui.Gold.Render(fmt.Sprintf("+%d PT", r.PointsDelta)))
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					ui.LabelValue("Balance", fmt.Sprintf("%d PT", p.TotalPoints)),
					ui.Muted.Render(fmt.Sprintf("(%s streak %d)", ui.IconStreak, r.Streak)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
					ui.Warn.Render("↩ Undone"), res.Task.ID, res.Task.Title,
					ui.Muted.Render(fmt.Sprintf("%d PT", r.PointsDelta)))
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", fmt.Sprintf("%d PT", p.TotalPoints)))
			}
			return nil
		},
	}

	return cmd
}
