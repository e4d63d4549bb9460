package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
	"pixelquest/internal/ui"
)

func newMergeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "merge [group#]",
		Short: "List mergeable triples, or merge one group",
		Long: `Without arguments, lists the card groups holding 3+ identical cards
(same name, rarity and star level; 5-star cards never merge).

With a group number from that list, consumes 3 cards of the group and mints
one upgraded card: +1 star, stats scaled to 120% (rounded up) of the first
consumed card.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			groups, err := svc.MergeableGroups(ctx)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconMerge, "MERGEABLE GROUPS"))
				if len(groups) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to merge: you need 3 identical cards below 5 stars."))
					return nil
				}
				for i, g := range groups {
					fmt.Fprintf(cmd.OutOrStdout(), "%d) %s %s %s %s\n",
						i+1, ui.Key.Render(g.Key.Name), ui.RarityText(string(g.Key.Rarity)),
						ui.Stars(g.Key.StarLevel, engine.MaxStarLevel),
						ui.Muted.Render(fmt.Sprintf("×%d (%d merge(s) available)", len(g.Cards), g.MergesAvailable)))
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Merge with: pq merge <group#> --yes"))
				return nil
			}

			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(groups) {
				return fmt.Errorf("group# must be between 1 and %d (see pq merge)", len(groups))
			}
			if !yes {
				return errors.New("merging consumes 3 cards irreversibly; pass --yes to confirm")
			}

			out, err := svc.Merge(ctx, groups[n-1].Key)
			if err != nil {
				return err
			}

			c := out.NewCard
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
				ui.Good.Render(ui.IconMerge+" Merged →"), ui.Key.Render(c.Name),
				ui.RarityText(c.Rarity), ui.Stars(c.StarLevel, engine.MaxStarLevel),
				ui.Muted.Render(fmt.Sprintf("HP %d / ATK %d", c.HP, c.ATK)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Consumed 3 cards (ids %v).", out.ConsumedIDs)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the merge")

	return cmd
}
