package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
	"pixelquest/internal/ui"
)

func newCardsCmd() *cobra.Command {
	var showArt bool

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Show the card collection (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			inv, err := svc.CardRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCard, fmt.Sprintf("MY CARDS (%d)", len(inv))))
			if len(inv) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No cards yet. Go draw: pq draw"))
				return nil
			}

			for _, c := range inv {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s %s %s %s\n",
					c.ID, ui.Key.Render(c.Name), ui.RarityText(c.Rarity),
					ui.Stars(c.StarLevel, engine.MaxStarLevel),
					ui.Muted.Render(fmt.Sprintf("HP %d / ATK %d", c.HP, c.ATK)))
				if showArt {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("   "+ui.ArtURL(c.Seed)))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showArt, "art", false, "Print the pixel-art URL for each card")

	return cmd
}
