package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGameRetractCmd())
	cmd.AddCommand(newGameBlankCmd())
	cmd.AddCommand(newGameTurnCmd("end", "End your turn and let the computer reply", "/api/v1/game/end-turn"))
	cmd.AddCommand(newGameTurnCmd("exchange", "Swap your whole rack for new tiles", "/api/v1/game/exchange"))
	cmd.AddCommand(newGameTurnCmd("pass", "Pass your turn", "/api/v1/game/pass"))
	cmd.AddCommand(newGameHistoryCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game, discarding any current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post(cmd.Context(), "/api/v1/game", nil, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the board, your rack and the scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(cmd.Context(), "/api/v1/game", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <tile_id> <row> <col>",
		Short: "Place a tile from your rack on the board",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tileID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tile_id: %w", err)
			}

			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row: %w", err)
			}

			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid col: %w", err)
			}

			req := map[string]int{"tile_id": tileID, "row": row, "col": col}
			var result Game

			if err := client.Post(cmd.Context(), "/api/v1/game/placements", req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newGameRetractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retract <tile_id>",
		Short: "Take a tile placed this turn back into your rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tileID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tile_id: %w", err)
			}

			var result Game
			if err := client.Delete(cmd.Context(), fmt.Sprintf("/api/v1/game/placements/%d", tileID), &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newGameBlankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blank <tile_id> <letter>",
		Short: "Choose the letter a blank tile stands for",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tileID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tile_id: %w", err)
			}

			letter := strings.ToUpper(args[1])
			if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
				return errors.New("letter must be a single character A-Z")
			}

			req := map[string]any{"tile_id": tileID, "letter": letter}
			var result Game

			if err := client.Post(cmd.Context(), "/api/v1/game/blanks", req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

// newGameTurnCmd builds one of the commands that hand the turn to the computer
func newGameTurnCmd(use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TurnResponse

			if err := client.Post(cmd.Context(), path, nil, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newGameHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the turns played so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result History

			if err := client.Get(cmd.Context(), "/api/v1/game/history", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newResultsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "results",
		Short: "List completed games, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Results

			path := fmt.Sprintf("/api/v1/results?limit=%d", limit)
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of games to list")
	return cmd
}
