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

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cat",
		Aliases: []string{"category"},
		Short:   "Manage task categories",
	}

	cmd.AddCommand(
		newCategoryListCmd(),
		newCategoryAddCmd(),
		newCategoryEditCmd(),
		newCategoryRmCmd(),
	)

	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
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
			for _, c := range cats {
				n, err := svc.TaskRepo().CountByCategory(ctx, c.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s %s\n",
					c.ID, ui.CategoryText(c.Name, c.Color), ui.Muted.Render(fmt.Sprintf("(%d task(s), %s)", n, c.Color)))
			}
			return nil
		},
	}
}

func newCategoryAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			c, err := svc.AddCategory(ctx, args[0], color)
			if err != nil {
				if errors.Is(err, engine.ErrEmptyTitle) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing added (empty name)."))
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Good.Render("➕ Added"), c.ID, ui.CategoryText(c.Name, c.Color))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "gray", "Color tag (red|orange|yellow|green|blue|purple|pink|gray)")

	return cmd
}

func newCategoryEditCmd() *cobra.Command {
	var name string
	var color string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename or recolor a category",
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
			c, err := svc.UpdateCategory(ctx, id, name, color)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Good.Render("✏ Updated"), c.ID, ui.CategoryText(c.Name, c.Color))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&color, "color", "", "New color tag")

	return cmd
}

func newCategoryRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category (refused while tasks reference it)",
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
			if !yes {
				return errors.New("deleting a category is irreversible; pass --yes to confirm")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			if err := svc.DeleteCategory(ctx, id); err != nil {
				var inUse engine.CategoryInUseError
				if errors.As(err, &inUse) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(ui.IconWarn+" "+inUse.Error()))
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Warn.Render("🗑 Deleted"), id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")

	return cmd
}
