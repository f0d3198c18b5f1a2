package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardRemoveRestoresPriorLocation(t *testing.T) {
	b := NewBoard()
	rack := NewRack(PlayerHuman)
	tile := &Tile{ID: 1, Letter: 'A', Value: 1}
	require.True(t, rack.Add(tile))
	rack.Remove(tile)

	require.True(t, b.Place(tile, b.OpeningCell()))
	require.True(t, b.Remove(tile))

	assert.Equal(t, Location{Kind: LocationRack, Owner: PlayerHuman}, tile.Location)
	assert.True(t, b.IsEmpty())
	assert.Zero(t, b.CurrentTurnCount())
}

func TestBoardRemoveRefusesCommittedTile(t *testing.T) {
	b := NewBoard()
	tile := &Tile{ID: 1, Letter: 'A', Value: 1, Location: Location{Kind: LocationInventory}}
	pos := b.OpeningCell()
	require.True(t, b.Place(tile, pos))
	b.Commit()

	assert.False(t, b.Remove(tile))
	assert.Same(t, tile, b.TileAt(pos))
	assert.Equal(t, Location{Kind: LocationBoard, Pos: pos}, tile.Location)
	assert.Equal(t, 1, b.TileCount())
}

func TestBoardLiftCommittedTile(t *testing.T) {
	b := NewBoard()
	tile := &Tile{ID: 1, Letter: 'A', Value: 1}
	pos := b.OpeningCell()
	require.True(t, b.Place(tile, pos))
	rackHome := Location{Kind: LocationRack, Owner: PlayerAI}

	assert.False(t, b.Lift(tile, rackHome), "current-turn tiles are removed, not lifted")

	b.Commit()
	assert.False(t, b.Lift(tile, Location{Kind: LocationBoard, Pos: pos}))
	require.True(t, b.Lift(tile, rackHome))
	assert.Equal(t, rackHome, tile.Location)
	assert.Nil(t, b.TileAt(pos))
	assert.True(t, b.IsEmpty())
}
