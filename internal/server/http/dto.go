package httpserver

import (
	"chessai/internal/chess"
	"chessai/internal/server/game"
)

type SquareDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type MoveDTO struct {
	From SquareDTO `json:"from"`
	To   SquareDTO `json:"to"`
}

func dtoToSquare(s SquareDTO) chess.Square { return chess.Sq(s.Row, s.Col) }

func dtoToMove(m MoveDTO) chess.Move {
	return chess.Move{From: dtoToSquare(m.From), To: dtoToSquare(m.To)}
}

func squareToDTO(s chess.Square) SquareDTO { return SquareDTO{Row: s.Row, Col: s.Col} }

func moveToDTO(m chess.Move) MoveDTO {
	return MoveDTO{From: squareToDTO(m.From), To: squareToDTO(m.To)}
}

type NewGameRequest struct {
	HumanColor string `json:"human_color"` // "white", "black" or "" for both sides by hand
	Depth      int    `json:"depth"`
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

type LegalMovesRequest struct {
	GameID string    `json:"game_id"`
	Square SquareDTO `json:"square"`
}

type LegalMovesResponse struct {
	Moves []SquareDTO `json:"moves"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// StateResponse is returned by every endpoint that changes or reads a game.
// Board rows are FEN letters, '.' for empty, row 0 first.
type StateResponse struct {
	GameID   string   `json:"game_id"`
	FEN      string   `json:"fen"`
	Board    []string `json:"board"`
	ToMove   string   `json:"to_move"`
	Status   string   `json:"status"`
	LastMove *MoveDTO `json:"last_move,omitempty"`
	Plies    int      `json:"plies"`
}

type AiMoveResponse struct {
	BestMove MoveDTO `json:"best_move"`
	Score    int     `json:"score"`
	Depth    int     `json:"depth"`
	Nodes    int64   `json:"nodes"`
	TimeMs   int64   `json:"time_ms"`
	StateResponse
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func snapshotToDTO(s game.Snapshot) StateResponse {
	rows := make([]string, chess.Rows)
	for r := 0; r < chess.Rows; r++ {
		line := make([]byte, chess.Cols)
		for c := 0; c < chess.Cols; c++ {
			line[c] = s.Board.Squares[r][c].Letter()
		}
		rows[r] = string(line)
	}
	resp := StateResponse{
		GameID: s.ID,
		FEN:    s.FEN,
		Board:  rows,
		ToMove: s.ToMove.String(),
		Status: s.Status.String(),
		Plies:  s.Plies,
	}
	if s.LastMove != nil {
		lm := moveToDTO(*s.LastMove)
		resp.LastMove = &lm
	}
	return resp
}
