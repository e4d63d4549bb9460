package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pixelquest/internal/storage"
	"pixelquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cats, err := svc.CategoryRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			byCategory := map[int64][]storage.Task{}
			for _, t := range tasks {
				byCategory[t.CategoryID] = append(byCategory[t.CategoryID], t)
			}

			printed := false
			for _, cat := range cats {
				group := byCategory[cat.ID]
				if len(group) == 0 && !all {
					continue
				}
				printed = true
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.CategoryText(cat.Name, cat.Color), ui.Muted.Render(fmt.Sprintf("(%d)", len(group))))
				for _, t := range group {
					box := "[ ]"
					title := t.Title
					if t.Completed {
						box = "[x]"
						title = ui.Muted.Render(title)
					}
					extra := fmt.Sprintf("+%d PT", t.Points)
					if t.Period == "once" {
						extra += ", once"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s #%d %s %s\n", box, t.ID, title, ui.Muted.Render("("+extra+")"))
				}
			}
			if !printed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks yet. Try: pq add \"First quest\""))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show empty categories too")

	return cmd
}
