package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
	"pixelquest/internal/storage"
	"pixelquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, points and collection summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.ProfileRepo().Get(ctx, storage.MainProfileKey)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Player", p.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points", fmt.Sprintf("%d PT", p.TotalPoints)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d completions", ui.IconStreak, p.Streak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Last active", p.LastActiveDate))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			pending, done := 0, 0
			for _, t := range tasks {
				if t.Completed {
					done++
				} else {
					pending++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTask+" Tasks"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d pending, %d done\n", ui.Key.Render("Today:"), pending, done)
			fmt.Fprintln(cmd.OutOrStdout(), "")

			inv, err := svc.CardRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			byRarity := map[engine.Rarity]int{}
			for _, c := range inv {
				byRarity[engine.Rarity(c.Rarity)]++
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconCard+" Collection"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d card(s)\n", ui.Key.Render("Total:"), len(inv))
			for _, r := range engine.AllRarities() {
				if n := byRarity[r]; n > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s ×%d\n", ui.RarityText(string(r)), n)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconBox+" Gacha"))
			draws := p.TotalPoints / engine.DrawCost
			if draws > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render("Draws affordable:"), ui.Good.Render(fmt.Sprintf("%d", draws)))
			} else {
				missing := engine.DrawCost - p.TotalPoints
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render("Draws affordable:"), ui.Muted.Render(fmt.Sprintf("0 (%d PT to go)", missing)))
			}

			groups, err := svc.MergeableGroups(ctx)
			if err != nil {
				return err
			}
			if len(groups) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %d group(s) ready (pq merge)\n", ui.Key.Render("Merges:"), len(groups))
			}
			return nil
		},
	}

	return cmd
}
