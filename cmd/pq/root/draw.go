package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
	"pixelquest/internal/ui"
)

func newDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: fmt.Sprintf("Spend %d PT on a mystery box draw", engine.DrawCost),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Draw(ctx)
			if err != nil {
				var insufficient engine.InsufficientFundsError
				if errors.As(err, &insufficient) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(ui.IconWarn+" "+insufficient.Error()))
					return nil
				}
				return err
			}

			c := res.Card
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBox, "YOU GOT IT!"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.IconCard, ui.Key.Render(c.Name), ui.RarityText(c.Rarity), ui.Stars(c.StarLevel, engine.MaxStarLevel))
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				ui.LabelValue("HP", c.HP), ui.LabelValue("ATK", c.ATK))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("art: "+ui.ArtURL(c.Seed)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", fmt.Sprintf("%d PT", res.NewBalance)))
			return nil
		},
	}

	return cmd
}
