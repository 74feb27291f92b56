package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour-go/internal/dependencies/mocks"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/player"
	"github.com/mcoot/connectfour-go/internal/storage"
	"github.com/mcoot/connectfour-go/internal/storage/memory"
	"github.com/mcoot/connectfour-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage      *memory.Storage
	clock        *mocks.MockClock
	random       *mocks.MockRandom
	playerRandom *mocks.MockRandom
	out          *bytes.Buffer
	controller   *Controller
	ctx          context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.clock.Step = time.Second
	s.random = mocks.NewMockRandom()
	s.playerRandom = mocks.NewMockRandom()
	s.out = &bytes.Buffer{}
	s.controller = s.newController(s.storage, DefaultConfig())
	s.ctx = context.Background()
}

func (s *ControllerSuite) newController(store storage.Storage, cfg Config) *Controller {
	return NewController(store, s.clock, s.random, s.out, testutil.NopLogger(), cfg)
}

func (s *ControllerSuite) randomPlayer(checker model.Checker) *player.RandomPlayer {
	p, err := player.NewRandomPlayer(checker, s.playerRandom)
	s.Require().NoError(err)
	return p
}

func (s *ControllerSuite) aiPlayer(checker model.Checker, lookahead int) *player.AIPlayer {
	p, err := player.NewAIPlayer(checker, model.TiebreakLeft, lookahead, s.playerRandom)
	s.Require().NoError(err)
	return p
}

// PlayGame tests

func (s *ControllerSuite) TestPlayGameRejectsSameChecker() {
	_, err := s.controller.PlayGame(s.ctx, s.randomPlayer(model.CheckerX), s.randomPlayer(model.CheckerX))
	s.ErrorIs(err, model.ErrCheckerConflict)
	s.Equal("need one X player and one O player.\n", s.out.String())

	records, _ := s.storage.ListGames(s.ctx, 0)
	s.Empty(records)
}

func (s *ControllerSuite) TestPlayGameVerticalWin() {
	s.random.QueueString("GAME12345678")
	// X always takes column 0, O always takes column 1
	s.playerRandom.QueueIntn(0, 1, 0, 1, 0, 1, 0)

	record, err := s.controller.PlayGame(s.ctx, s.randomPlayer(model.CheckerX), s.randomPlayer(model.CheckerO))
	s.Require().NoError(err)

	s.Equal(model.GameID("GAME12345678"), record.ID)
	s.Equal(model.CheckerX, record.Winner)
	s.Equal(4, record.NumMoves)
	s.Len(record.Moves, 7)
	s.Equal(model.Move{Checker: model.CheckerO, Column: 1}, record.Moves[1])
	s.Equal("Player X", record.XPlayer)
	s.Equal("Player O", record.OPlayer)
	s.Equal(6, record.Height)
	s.Equal(7, record.Width)

	output := s.out.String()
	s.True(strings.HasPrefix(output, "Welcome to Connect Four!\n\n"))
	s.Equal(4, strings.Count(output, "Player X's turn\n"))
	s.Equal(3, strings.Count(output, "Player O's turn\n"))
	s.True(strings.HasSuffix(output, "Player X wins in 4 moves\nCongratulations!\n"))
	s.NotContains(output, "It's a tie!")
}

func (s *ControllerSuite) TestPlayGamePrintsBoardAfterEveryMove() {
	s.playerRandom.QueueIntn(0, 1, 0, 1, 0, 1, 0)

	_, err := s.controller.PlayGame(s.ctx, s.randomPlayer(model.CheckerX), s.randomPlayer(model.CheckerO))
	s.Require().NoError(err)

	// One empty board plus one per move
	s.Equal(8, strings.Count(s.out.String(), " 0 1 2 3 4 5 6\n"))
}

func (s *ControllerSuite) TestPlayGameTie() {
	controller := s.newController(s.storage, Config{Height: 1, Width: 2})

	record, err := controller.PlayGame(s.ctx, s.randomPlayer(model.CheckerX), s.randomPlayer(model.CheckerO))
	s.Require().NoError(err)

	s.True(record.IsTie())
	s.Equal(2, record.NumMoves)
	s.Equal([]string{"XO"}, record.FinalBoard)
	s.True(strings.HasSuffix(s.out.String(), "It's a tie!\n"))
	s.NotContains(s.out.String(), "Congratulations!")
}

func (s *ControllerSuite) TestPlayGameSecondPlayerCanMoveFirstAsO() {
	controller := s.newController(s.storage, Config{Height: 1, Width: 2})

	record, err := controller.PlayGame(s.ctx, s.randomPlayer(model.CheckerO), s.randomPlayer(model.CheckerX))
	s.Require().NoError(err)

	s.Equal(model.CheckerO, record.Moves[0].Checker)
	s.Equal([]string{"OX"}, record.FinalBoard)
}

func (s *ControllerSuite) TestPlayGameAIFindsRowWin() {
	x := s.aiPlayer(model.CheckerX, 1)
	o := s.aiPlayer(model.CheckerO, 0)

	record, err := s.controller.PlayGame(s.ctx, x, o)
	s.Require().NoError(err)

	// Both stack leftmost until X completes the bottom row
	s.Equal(model.CheckerX, record.Winner)
	s.Equal(8, record.NumMoves)
	s.Len(record.Moves, 15)
	s.Equal(model.Move{Checker: model.CheckerX, Column: 3}, record.Moves[14])
	s.Equal("XXXX   ", record.FinalBoard[5])
	s.Equal("Player X (LEFT, 1)", record.XPlayer)
	s.Contains(s.out.String(), "Player X (LEFT, 1)'s turn\n")
	s.Contains(s.out.String(), "Player X (LEFT, 1) wins in 8 moves\n")
}

func (s *ControllerSuite) TestPlayGameSavesRecord() {
	s.random.QueueString("SAVED0000001")

	record, err := s.controller.PlayGame(s.ctx, s.aiPlayer(model.CheckerX, 1), s.aiPlayer(model.CheckerO, 0))
	s.Require().NoError(err)

	saved, err := s.controller.GetGame(s.ctx, "SAVED0000001")
	s.Require().NoError(err)
	s.Equal(record, saved)
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), saved.StartedAt)
	s.Equal(saved.StartedAt.Add(time.Second), saved.EndedAt)

	listed, err := s.controller.ListGames(s.ctx, 10)
	s.Require().NoError(err)
	s.Len(listed, 1)
}

func (s *ControllerSuite) TestPlayGameReturnsRecordWhenSaveFails() {
	controller := s.newController(failingStorage{}, DefaultConfig())

	record, err := controller.PlayGame(s.ctx, s.aiPlayer(model.CheckerX, 1), s.aiPlayer(model.CheckerO, 0))
	s.Require().NoError(err)
	s.Equal(model.CheckerX, record.Winner)
}

func (s *ControllerSuite) TestPlayGameStopsWhenInputCloses() {
	human, err := player.NewHumanPlayer(model.CheckerX, strings.NewReader("3\n"), s.out)
	s.Require().NoError(err)

	_, err = s.controller.PlayGame(s.ctx, human, s.randomPlayer(model.CheckerO))
	s.ErrorIs(err, model.ErrInputClosed)

	records, _ := s.storage.ListGames(s.ctx, 0)
	s.Empty(records)
}

func (s *ControllerSuite) TestPlayGameHonoursCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.controller.PlayGame(ctx, s.randomPlayer(model.CheckerX), s.randomPlayer(model.CheckerO))
	s.ErrorIs(err, context.Canceled)
}

// ProcessMove tests

func (s *ControllerSuite) TestProcessMoveContinue() {
	b, _ := model.NewBoard(6, 7)
	s.playerRandom.QueueIntn(4)

	move, outcome, err := s.controller.ProcessMove(s.randomPlayer(model.CheckerO), b)
	s.Require().NoError(err)
	s.Equal(model.OutcomeContinue, outcome)
	s.Equal(model.Move{Checker: model.CheckerO, Column: 4}, move)
	s.Equal(model.CheckerO, b.Slots[5][4])
	s.True(strings.HasPrefix(s.out.String(), "Player O's turn\n\n|"))
}

func (s *ControllerSuite) TestProcessMoveWin() {
	b, _ := model.NewBoard(6, 7)
	s.Require().NoError(b.AddCheckers("061626"))

	_, outcome, err := s.controller.ProcessMove(s.aiPlayer(model.CheckerX, 1), b)
	s.Require().NoError(err)
	s.Equal(model.OutcomeWin, outcome)
	s.Contains(s.out.String(), "wins in 1 moves\nCongratulations!\n")
}

func (s *ControllerSuite) TestProcessMoveFullBoardError() {
	b, _ := model.NewBoard(1, 1)
	_ = b.Place(model.CheckerX, 0)

	_, _, err := s.controller.ProcessMove(s.randomPlayer(model.CheckerO), b)
	s.ErrorIs(err, model.ErrBoardFull)
}

type failingStorage struct{}

var errStorageDown = errors.New("storage down")

func (failingStorage) SaveGame(ctx context.Context, record *model.GameRecord) error {
	return errStorageDown
}

func (failingStorage) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	return nil, errStorageDown
}

func (failingStorage) ListGames(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	return nil, errStorageDown
}

func (failingStorage) DeleteGame(ctx context.Context, id model.GameID) error {
	return errStorageDown
}
