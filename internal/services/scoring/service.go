package scoring

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/board"
	"github.com/mcoot/wordgame/internal/services/inventory"
)

const (
	// BingoTiles is the number of tiles a turn must place to earn BingoBonus
	BingoTiles = 7
	BingoBonus = 50
)

// WordScore is the points one word of a turn earned
type WordScore struct {
	Word  string
	Score int
}

// Breakdown itemizes a turn score
type Breakdown struct {
	Words []WordScore
	Bonus int
	Total int
}

// Service computes point values for words and turns
type Service struct {
	logger *slog.Logger
}

// New creates a new ScoringService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "scoring")),
	}
}

// LetterValue returns the fixed value of a letter type. Blanks are worth
// zero whatever letter they show.
func (s *Service) LetterValue(letter rune) int {
	return inventory.LetterValue(letter)
}

// WordScore walks the word's cells from start. Each letter is multiplied by
// its cell's letter bonus, then the sum by every word bonus along the word.
// Bonuses count on every occupied cell, including tiles from earlier turns.
func (s *Service) WordScore(word string, start model.Position, o model.Orientation, b *model.Board) int {
	sum := 0
	wordMultiplier := 1

	pos := start
	for _, letter := range word {
		bonus := b.Bonus(pos)
		value := s.LetterValue(letter)
		if tile := b.TileAt(pos); tile != nil {
			value = s.LetterValue(tile.Letter)
		}
		sum += value * bonus.LetterMultiplier()
		wordMultiplier *= bonus.WordMultiplier()
		pos = pos.Step(o, 1)
	}

	return sum * wordMultiplier
}

// TurnScore scores the current-turn tiles: the main word plus every distinct
// crossing word through a placed tile. The bingo bonus is not included.
func (s *Service) TurnScore(b *model.Board) int {
	return lo.SumBy(s.turnWords(b), func(w WordScore) int { return w.Score })
}

// TurnBreakdown itemizes the score of the current-turn tiles, bingo included
func (s *Service) TurnBreakdown(b *model.Board) Breakdown {
	words := s.turnWords(b)
	bonus := s.Bonus(b.CurrentTurnCount())
	return Breakdown{
		Words: words,
		Bonus: bonus,
		Total: lo.SumBy(words, func(w WordScore) int { return w.Score }) + bonus,
	}
}

func (s *Service) turnWords(b *model.Board) []WordScore {
	main, ok := board.MainWord(b)
	if !ok || main.Word == "" {
		return nil
	}

	// A crossing word spelled like the main word is only scored once
	crosses := lo.Filter(board.CrossWords(b, main), func(w board.WordRef, _ int) bool {
		return w.Word != main.Word
	})
	refs := append([]board.WordRef{main}, crosses...)
	return lo.Map(refs, func(w board.WordRef, _ int) WordScore {
		return WordScore{
			Word:  w.Word,
			Score: s.WordScore(w.Word, w.Start, w.Orientation, b),
		}
	})
}

// Bonus returns the bingo bonus for the number of tiles placed in a turn
func (s *Service) Bonus(placed int) int {
	if placed == BingoTiles {
		return BingoBonus
	}
	return 0
}

// RackValue is the sum of the tiles' values, used as the end-of-game penalty
func (s *Service) RackValue(tiles []*model.Tile) int {
	return lo.SumBy(tiles, func(t *model.Tile) int { return t.Value })
}

// SettleFinalScores deducts each player's remaining rack value and credits
// the player who went out, if any, with the opponent's. Scores never drop
// below zero.
func (s *Service) SettleFinalScores(scores map[model.PlayerID]int, racks map[model.PlayerID][]*model.Tile) map[model.PlayerID]int {
	final := make(map[model.PlayerID]int, len(scores))
	for player, score := range scores {
		final[player] = score - s.RackValue(racks[player])
	}

	for player := range scores {
		if len(racks[player]) == 0 {
			final[player] += s.RackValue(racks[player.Opponent()])
		}
	}

	for player, score := range final {
		final[player] = max(score, 0)
	}
	return final
}

// DetermineWinner returns the player with the highest score, or empty on a tie
func (s *Service) DetermineWinner(scores map[model.PlayerID]int) model.PlayerID {
	var winner model.PlayerID
	best := -1
	tie := false
	for player, score := range scores {
		switch {
		case score > best:
			winner, best, tie = player, score, false
		case score == best:
			tie = true
		}
	}
	if tie {
		return ""
	}
	return winner
}

// Interface for dependency injection
type ServiceInterface interface {
	LetterValue(letter rune) int
	WordScore(word string, start model.Position, o model.Orientation, b *model.Board) int
	TurnScore(b *model.Board) int
	TurnBreakdown(b *model.Board) Breakdown
	Bonus(placed int) int
	RackValue(tiles []*model.Tile) int
	SettleFinalScores(scores map[model.PlayerID]int, racks map[model.PlayerID][]*model.Tile) map[model.PlayerID]int
	DetermineWinner(scores map[model.PlayerID]int) model.PlayerID
}

var _ ServiceInterface = (*Service)(nil)
