package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gamegrid/pkg/errors"
	"github.com/matzehuels/gamegrid/pkg/games"
)

// gamesCommand creates the games command group.
func (c *CLI) gamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Inspect the game library",
	}
	cmd.AddCommand(c.gamesListCommand())
	cmd.AddCommand(c.gamesShowCommand())
	return cmd
}

func (c *CLI) gamesListCommand() *cobra.Command {
	var (
		flags  layoutFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := c.loadLibrary()
			if err != nil {
				return err
			}
			q := games.Query{Category: flags.category, Difficulty: flags.difficulty}
			if flags.available {
				q.Available = &flags.available
			}
			list := lib.Find(q)

			if format == "table" {
				if len(list) == 0 {
					printWarning("No games match")
					return nil
				}
				fmt.Fprintln(out, gamesTable(list))
				printDetail("%d of %d games", len(list), lib.Len())
				return nil
			}

			filtered, err := games.New(list)
			if err != nil {
				return err
			}
			return games.Write(out, filtered, format)
		},
	}

	cmd.Flags().StringVar(&flags.category, "category", "", "only games in this category")
	cmd.Flags().StringVar(&flags.difficulty, "difficulty", "", "only games of this difficulty")
	cmd.Flags().BoolVar(&flags.available, "available", false, "only playable games")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, toml, yaml, json")

	return cmd
}

func (c *CLI) gamesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := errors.ValidateGameID(id); err != nil {
				return err
			}
			lib, err := c.loadLibrary()
			if err != nil {
				return err
			}
			g, ok := lib.ByID(id)
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "game %q not found", id)
			}

			fmt.Fprintln(out, StyleTitle.Render(g.Title))
			printKeyValue("ID", g.ID)
			printKeyValue("Category", string(g.Category))
			printKeyValue("Difficulty", string(g.Difficulty))
			printKeyValue("High score", fmt.Sprint(g.HighScore))
			if g.EstimatedPlayTime != "" {
				printKeyValue("Play time", g.EstimatedPlayTime)
			}
			if g.HasArtwork() {
				printKeyValue("Thumbnail", g.Thumbnail)
			} else {
				printKeyValue("Thumbnail", StyleDim.Render("from catalog"))
			}
			if g.Available {
				printSuccess("Available")
			} else {
				printInfo("Coming soon")
			}
			if g.Description != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, g.Description)
			}
			return nil
		},
	}
}
