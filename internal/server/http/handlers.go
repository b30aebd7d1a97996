package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"chessai/internal/chess"
	"chessai/internal/server/game"
)

// Handler serves /api/* for the board UI.
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	return &Handler{games: games}
}

func (h *Handler) Games() *game.Manager { return h.games }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/healthz" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/legal_moves":
		h.handleLegalMoves(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if !decode(w, r, &req) {
		return
	}
	human := chess.NoColor
	if req.HumanColor != "" {
		c, ok := chess.ParseColor(req.HumanColor)
		if !ok {
			writeError(w, http.StatusBadRequest, errors.New("human_color must be white or black"))
			return
		}
		human = c
	}
	s, err := h.games.NewGame(human, req.Depth)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	log.Printf("new game %s human=%v", s.ID, human)
	writeJSON(w, http.StatusOK, snapshotToDTO(s))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.State(req.GameID)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotToDTO(s))
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req LegalMovesRequest
	if !decode(w, r, &req) {
		return
	}
	moves, err := h.games.LegalMoves(req.GameID, dtoToSquare(req.Square))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	resp := LegalMovesResponse{Moves: make([]SquareDTO, len(moves))}
	for i, sq := range moves {
		resp.Moves[i] = squareToDTO(sq)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.Play(req.GameID, dtoToMove(req.Move))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotToDTO(s))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	res, s, err := h.games.EngineMove(req.GameID)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	log.Printf("game %s engine %v score=%d depth=%d nodes=%d in %v",
		s.ID, res.BestMove, res.Score, res.Depth, res.Nodes, res.TimeUsed)
	writeJSON(w, http.StatusOK, AiMoveResponse{
		BestMove:      moveToDTO(res.BestMove),
		Score:         res.Score,
		Depth:         res.Depth,
		Nodes:         res.Nodes,
		TimeMs:        res.TimeUsed.Milliseconds(),
		StateResponse: snapshotToDTO(s),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, game.ErrOffBoard), errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrBadDepth):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("bad json"))
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
