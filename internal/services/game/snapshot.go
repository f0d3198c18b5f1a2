package game

import (
	"maps"

	"github.com/samber/lo"

	"github.com/mcoot/wordgame/internal/model"
)

// snapshot copies the session into a view the caller may keep
func (c *Controller) snapshot() *model.Snapshot {
	s := c.session

	g := *s.game
	g.Scores = maps.Clone(s.game.Scores)
	if s.game.LastResult != nil {
		last := *s.game.LastResult
		g.LastResult = &last
	}

	return &model.Snapshot{
		Game:          g,
		Cells:         cellViews(s.board),
		Rack:          lo.Map(s.human.Tiles(), func(t *model.Tile, _ int) model.TileView { return tileView(t) }),
		OpponentTiles: s.ai.Rack.Len(),
		Remaining:     s.inventory.Remaining(),
		Strategy:      s.ai.Strategy,
	}
}

func cellViews(b *model.Board) [][]model.CellView {
	cells := make([][]model.CellView, b.Size)
	for row := range b.Size {
		cells[row] = make([]model.CellView, b.Size)
		for col := range b.Size {
			pos := model.Position{Row: row, Col: col}
			view := model.CellView{Pos: pos, Bonus: b.Bonus(pos)}
			if t := b.TileAt(pos); t != nil {
				view.Occupied = true
				view.TileID = t.ID
				view.Letter = t.Face()
				view.Value = t.Value
				view.Blank = t.IsBlank()
				view.Current = b.InCurrentTurn(t.ID)
			}
			cells[row][col] = view
		}
	}
	return cells
}

func tileView(t *model.Tile) model.TileView {
	return model.TileView{
		ID:       t.ID,
		Letter:   t.Letter,
		Value:    t.Value,
		Assigned: t.Assigned,
	}
}
