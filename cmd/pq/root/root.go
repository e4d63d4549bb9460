package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pixelquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "pq",
	Short:         "PixelQuest: pixel-styled task tracker with a card gacha",
	Long:          "PixelQuest is a local-first CLI/TUI task tracker: finish tasks to earn points, spend points on card draws, merge triples into stronger cards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newDoneCmd(),
		newRmCmd(),
		newDrawCmd(),
		newCardsCmd(),
		newMergeCmd(),
		newCategoryCmd(),
		newStatusCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
