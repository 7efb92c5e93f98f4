package response

import (
	"time"

	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/bot"
	"github.com/mcoot/othello/internal/services/scoring"
)

// Score is a disc count
type Score struct {
	Light int `json:"light"`
	Dark  int `json:"dark"`
	Empty int `json:"empty"`
}

// ScoreFromModel converts model.Score
func ScoreFromModel(s model.Score) Score {
	return Score{Light: s.Light, Dark: s.Dark, Empty: s.Empty}
}

// Result is the outcome of a finished game
type Result struct {
	Winner string `json:"winner"` // "light", "dark" or "" for a draw
	Score  Score  `json:"score"`
}

// ResultFromModel converts model.GameResult, returning nil for unfinished games
func ResultFromModel(r *model.GameResult) *Result {
	if r == nil {
		return nil
	}
	return &Result{Winner: r.Winner.String(), Score: ScoreFromModel(r.Score)}
}

// Game represents a game in API responses
type Game struct {
	ID         string         `json:"id"`
	State      string         `json:"state"`
	Position   string         `json:"position"`
	SideToMove string         `json:"side_to_move"`
	Status     string         `json:"status"`
	Light      model.Seat     `json:"light"`
	Dark       model.Seat     `json:"dark"`
	Score      Score          `json:"score"`
	LegalMoves []model.Action `json:"legal_moves"`
	Moves      []model.Move   `json:"moves"`
	Result     *Result        `json:"result,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// GameFromModel converts model.Game along with the derived rule state
func GameFromModel(g *model.Game, status string, score model.Score, legal []model.Action) Game {
	moves := g.Moves
	if moves == nil {
		moves = []model.Move{}
	}
	if legal == nil {
		legal = []model.Action{}
	}
	return Game{
		ID:         string(g.ID),
		State:      string(g.State),
		Position:   g.Position.Encode(),
		SideToMove: g.Position.SideToMove().String(),
		Status:     status,
		Light:      g.Light,
		Dark:       g.Dark,
		Score:      ScoreFromModel(score),
		LegalMoves: legal,
		Moves:      moves,
		Result:     ResultFromModel(g.Result),
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

// GameSummary is a list entry for a game
type GameSummary struct {
	ID         string    `json:"id"`
	State      string    `json:"state"`
	SideToMove string    `json:"side_to_move"`
	Light      string    `json:"light"`
	Dark       string    `json:"dark"`
	Moves      int       `json:"moves"`
	Winner     *string   `json:"winner,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// GameSummaryFromModel converts model.Game to a list entry
func GameSummaryFromModel(g *model.Game) GameSummary {
	var winner *string
	if g.Result != nil {
		w := g.Result.Winner.String()
		winner = &w
	}
	return GameSummary{
		ID:         string(g.ID),
		State:      string(g.State),
		SideToMove: g.Position.SideToMove().String(),
		Light:      g.Light.String(),
		Dark:       g.Dark.String(),
		Moves:      len(g.Moves),
		Winner:     winner,
		CreatedAt:  g.CreatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []GameSummary `json:"games"`
}

// LegalMoves is the response for the legal moves of a game
type LegalMoves struct {
	SideToMove string         `json:"side_to_move"`
	Moves      []model.Action `json:"moves"`
}

// MoveResponse is the response after a move or pass
type MoveResponse struct {
	Game       Game            `json:"game"`
	BotActions []bot.BotAction `json:"bot_actions"`
}

// Analysis describes an encoded position without storing anything
type Analysis struct {
	Position   string         `json:"position"`
	SideToMove string         `json:"side_to_move"`
	Status     string         `json:"status"`
	LegalMoves []model.Action `json:"legal_moves"`
	Score      Score          `json:"score"`
	Winner     *string        `json:"winner,omitempty"`
}

// AnalysisFromOutcome builds an Analysis from a scored position
func AnalysisFromOutcome(p model.Position, status string, legal []model.Action, outcome scoring.Outcome) Analysis {
	var winner *string
	if outcome.Terminal {
		w := outcome.Winner.String()
		winner = &w
	}
	return Analysis{
		Position:   p.Encode(),
		SideToMove: p.SideToMove().String(),
		Status:     status,
		LegalMoves: legal,
		Score:      ScoreFromModel(outcome.Score),
		Winner:     winner,
	}
}

// ApplyResponse is the response after applying a placement to a position
type ApplyResponse struct {
	Position string         `json:"position"`
	Flipped  []model.Action `json:"flipped"`
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
