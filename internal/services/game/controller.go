package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/wordgame/internal/dependencies/clock"
	"github.com/mcoot/wordgame/internal/dependencies/random"
	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/board"
	"github.com/mcoot/wordgame/internal/services/bot"
	"github.com/mcoot/wordgame/internal/services/inventory"
	"github.com/mcoot/wordgame/internal/services/scoring"
	"github.com/mcoot/wordgame/internal/storage"
)

// session is the state of the one game being played
type session struct {
	game      *model.Game
	board     *model.Board
	inventory *inventory.Service
	human     *model.Rack
	ai        *bot.Player
	events    []model.Event
}

// Controller owns the single local session: whose turn it is, the commands
// the human may issue, the computer's turns and the end of the game
type Controller struct {
	storage        storage.Storage
	boardService   *board.Service
	scoringService *scoring.Service
	botService     *bot.Service
	clock          clock.Clock
	random         random.Random
	strategy       string
	baseLogger     *slog.Logger
	logger         *slog.Logger

	mu      sync.Mutex
	session *session
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	scoringService *scoring.Service,
	botService *bot.Service,
	clock clock.Clock,
	random random.Random,
	strategy string,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		scoringService: scoringService,
		botService:     botService,
		clock:          clock,
		random:         random,
		strategy:       strategy,
		baseLogger:     logger,
		logger:         logger.With(slog.String("component", "game-controller")),
	}
}

// NewGame discards any current session and deals a fresh game.
// The human moves first.
func (c *Controller) NewGame(ctx context.Context) (*model.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	inv := inventory.New(c.random, c.baseLogger)
	b := model.NewBoard()
	human := model.NewRack(model.PlayerHuman)
	aiRack := model.NewRack(model.PlayerAI)

	ai, err := c.botService.NewPlayer(model.PlayerAI, b, inv, aiRack, c.strategy)
	if err != nil {
		return nil, err
	}

	inv.Fill(human)
	inv.Fill(aiRack)

	now := c.clock.Now()
	g := &model.Game{
		ID:            model.GameID(uuid.NewString()),
		State:         model.GameStateInProgress,
		CurrentPlayer: model.PlayerHuman,
		Scores: map[model.PlayerID]int{
			model.PlayerHuman: 0,
			model.PlayerAI:    0,
		},
		TurnNumber: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	c.session = &session{
		game:      g,
		board:     b,
		inventory: inv,
		human:     human,
		ai:        ai,
	}
	c.record(model.Event{Type: model.EventGameStarted})

	c.logger.Info("game created",
		slog.String("game_id", string(g.ID)),
		slog.String("strategy", c.strategy),
	)

	return c.snapshot(), nil
}

// Snapshot returns a read-only view of the current session
func (c *Controller) Snapshot() (*model.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil, model.ErrNoGameInProgress
	}
	return c.snapshot(), nil
}

// History returns the turn events of the current session, oldest first
func (c *Controller) History() ([]model.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil, model.ErrNoGameInProgress
	}
	events := make([]model.Event, len(c.session.events))
	copy(events, c.session.events)
	return events, nil
}

// PlaceTile moves one of the human's tiles, from the rack or from elsewhere
// on the board this turn, onto an empty cell
func (c *Controller) PlaceTile(tileID model.TileID, pos model.Position) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireTurn(model.PlayerHuman); err != nil {
		return err
	}
	s := c.session

	tile, err := c.humanTile(tileID)
	if err != nil {
		return err
	}

	if err := c.boardService.PlaceTile(s.board, tile, pos); err != nil {
		return err
	}
	s.human.Remove(tile)
	return nil
}

// RetractTile takes a tile placed this turn back into the human's rack
func (c *Controller) RetractTile(tileID model.TileID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireTurn(model.PlayerHuman); err != nil {
		return err
	}
	s := c.session

	tile, ok := s.inventory.Tile(tileID)
	if !ok {
		return model.ErrTileNotFound
	}
	if err := c.boardService.RetractTile(s.board, tile); err != nil {
		return err
	}
	if tile.IsBlank() {
		tile.Assigned = 0
	}
	s.human.Add(tile)
	return nil
}

// AssignBlank sets the letter a human blank tile stands for
func (c *Controller) AssignBlank(tileID model.TileID, letter rune) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireTurn(model.PlayerHuman); err != nil {
		return err
	}

	tile, err := c.humanTile(tileID)
	if err != nil {
		return err
	}
	return c.boardService.AssignBlank(tile, letter)
}

// EndTurn validates the human's placements. An invalid turn leaves the tiles
// on the board and is reported in the result, not as an error. A valid turn
// is scored and committed, and the rack refilled.
func (c *Controller) EndTurn(ctx context.Context) (model.TurnResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireTurn(model.PlayerHuman); err != nil {
		return model.TurnResult{}, err
	}
	s := c.session

	result := c.boardService.EndTurn(s.board)
	if !result.Success {
		s.game.LastResult = &result
		c.record(model.Event{
			Type:     model.EventMoveFailed,
			PlayerID: model.PlayerHuman,
			Message:  result.Message,
		})
		return result, nil
	}

	result.Score = c.scoringService.TurnScore(s.board) + c.scoringService.Bonus(result.Placed)
	s.game.Scores[model.PlayerHuman] += result.Score
	s.board.Commit()
	for range result.Placed {
		tile, ok := s.inventory.Draw()
		if !ok {
			break
		}
		s.human.Add(tile)
	}

	c.finishTurn(ctx, model.PlayerHuman, result, model.EventMoveCommitted)
	return result, nil
}

// ExchangeRack returns the human's whole rack to the inventory and draws a
// new one, using up the turn
func (c *Controller) ExchangeRack(ctx context.Context) (model.TurnResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireTurn(model.PlayerHuman); err != nil {
		return model.TurnResult{}, err
	}
	s := c.session

	if s.board.CurrentTurnCount() > 0 {
		return model.TurnResult{}, model.ErrTilesPending
	}
	if _, err := s.inventory.Exchange(s.human); err != nil {
		return model.TurnResult{}, err
	}

	result := model.TurnResult{Success: true, Message: "rack exchanged"}
	c.finishTurn(ctx, model.PlayerHuman, result, model.EventRackExchanged)
	return result, nil
}

// Pass gives up the human's turn without playing
func (c *Controller) Pass(ctx context.Context) (model.TurnResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireTurn(model.PlayerHuman); err != nil {
		return model.TurnResult{}, err
	}
	if c.session.board.CurrentTurnCount() > 0 {
		return model.TurnResult{}, model.ErrTilesPending
	}

	result := model.TurnResult{Success: true, Message: "turn passed"}
	c.finishTurn(ctx, model.PlayerHuman, result, model.EventTurnPassed)
	return result, nil
}

// PlayAITurn runs the computer's search and commits its move. When it has no
// move and cannot exchange, the turn is passed.
func (c *Controller) PlayAITurn(ctx context.Context) (model.TurnResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireTurn(model.PlayerAI); err != nil {
		return model.TurnResult{}, err
	}
	s := c.session

	result, err := s.ai.MakeMove(ctx, s.game.Scores[model.PlayerHuman])
	switch {
	case errors.Is(err, model.ErrInventoryExhausted), errors.Is(err, model.ErrNoMoveFound):
		result = model.TurnResult{Success: true, Message: result.Message}
		c.finishTurn(ctx, model.PlayerAI, result, model.EventTurnPassed)
		return result, nil
	case err != nil:
		return model.TurnResult{}, err
	}

	s.game.Scores[model.PlayerAI] = s.ai.Score

	eventType := model.EventMoveCommitted
	switch {
	case !result.Success:
		// The committed move was rejected and rolled back; the turn is lost
		eventType = model.EventMoveFailed
	case result.Placed == 0:
		eventType = model.EventRackExchanged
	}

	c.finishTurn(ctx, model.PlayerAI, result, eventType)
	return result, nil
}

// finishTurn records the turn, ends the game if due and otherwise hands the
// turn to the opponent
func (c *Controller) finishTurn(ctx context.Context, player model.PlayerID, result model.TurnResult, eventType model.EventType) {
	s := c.session
	g := s.game

	g.LastResult = &result
	c.record(model.Event{
		Type:     eventType,
		PlayerID: player,
		Words:    result.Words,
		Tiles:    result.Placed,
		Score:    result.Score,
		Message:  result.Message,
	})

	if result.Score > 0 {
		g.Scoreless = 0
	} else {
		g.Scoreless++
	}

	wentOut := eventType == model.EventMoveCommitted && s.inventory.IsEmpty() && c.rack(player).Len() == 0
	if wentOut || g.Scoreless >= model.MaxScorelessTurns {
		c.complete(ctx)
		return
	}

	g.CurrentPlayer = player.Opponent()
	g.TurnNumber++
	g.UpdatedAt = c.clock.Now()
}

// complete settles the rack penalties, ends the game and stores its summary
func (c *Controller) complete(ctx context.Context) {
	s := c.session
	g := s.game

	final := c.scoringService.SettleFinalScores(g.Scores, map[model.PlayerID][]*model.Tile{
		model.PlayerHuman: s.human.Tiles(),
		model.PlayerAI:    s.ai.Rack.Tiles(),
	})
	g.Scores = final
	s.ai.Score = final[model.PlayerAI]
	g.State = model.GameStateComplete
	g.UpdatedAt = c.clock.Now()

	winner := c.scoringService.DetermineWinner(final)
	c.record(model.Event{
		Type:    model.EventGameComplete,
		Message: "game over",
	})

	summary := &model.GameSummary{
		ID:          g.ID,
		FinalScores: final,
		Winner:      winner,
		Turns:       g.TurnNumber,
		CompletedAt: g.UpdatedAt,
	}
	if err := c.storage.SaveGameSummary(ctx, summary); err != nil {
		c.logger.Error("failed to save game summary",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("game completed",
		slog.String("game_id", string(g.ID)),
		slog.String("winner", string(winner)),
		slog.Int("human_score", final[model.PlayerHuman]),
		slog.Int("ai_score", final[model.PlayerAI]),
		slog.Int("turns", g.TurnNumber),
	)
}

// Results returns the summaries of finished games, most recent first
func (c *Controller) Results(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	return c.storage.ListGameSummaries(ctx, limit)
}

// requireTurn checks a session is running and it is player's turn
func (c *Controller) requireTurn(player model.PlayerID) error {
	if c.session == nil {
		return model.ErrNoGameInProgress
	}
	if c.session.game.IsComplete() {
		return model.ErrGameComplete
	}
	if c.session.game.CurrentPlayer != player {
		return model.ErrNotPlayerTurn
	}
	return nil
}

// humanTile finds a tile the human may act on: in their rack or placed by
// them this turn
func (c *Controller) humanTile(id model.TileID) (*model.Tile, error) {
	s := c.session
	tile, ok := s.inventory.Tile(id)
	if !ok {
		return nil, model.ErrTileNotFound
	}
	if !s.human.Contains(id) && !s.board.InCurrentTurn(id) {
		return nil, model.ErrTileNotInRack
	}
	return tile, nil
}

func (c *Controller) rack(player model.PlayerID) *model.Rack {
	if player == model.PlayerAI {
		return c.session.ai.Rack
	}
	return c.session.human
}

func (c *Controller) record(e model.Event) {
	s := c.session
	e.Timestamp = c.clock.Now()
	e.GameID = s.game.ID
	e.Turn = s.game.TurnNumber
	s.events = append(s.events, e)
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context) (*model.Snapshot, error)
	Snapshot() (*model.Snapshot, error)
	History() ([]model.Event, error)
	PlaceTile(tileID model.TileID, pos model.Position) error
	RetractTile(tileID model.TileID) error
	AssignBlank(tileID model.TileID, letter rune) error
	EndTurn(ctx context.Context) (model.TurnResult, error)
	ExchangeRack(ctx context.Context) (model.TurnResult, error)
	Pass(ctx context.Context) (model.TurnResult, error)
	PlayAITurn(ctx context.Context) (model.TurnResult, error)
	Results(ctx context.Context, limit int) ([]*model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
