package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"fulltree/game"
	"fulltree/meta"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type findMoveRequest struct {
	Board  []string `json:"board"`
	Player string   `json:"player,omitempty"` // Defaults to AI
}

type findMoveResponse struct {
	Move   game.Position `json:"move"`
	Points int           `json:"points"`
}

type evaluateRequest struct {
	Board []string `json:"board"`
}

type evaluateResponse struct {
	Evaluations []Evaluation  `json:"evaluations"`
	Best        game.Position `json:"best"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server exposes agents over HTTP, one per seat.
type Server struct {
	agents map[game.Symbol]Agent
	router chi.Router
}

type ServerOption func(s *Server)

// WithHumanAgent serves find move requests for the human seat with agent.
func WithHumanAgent(agent Agent) ServerOption {
	return func(s *Server) {
		s.agents[game.Human] = agent
	}
}

// NewServer serves agent for the AI seat. Requests for a seat without an
// agent are answered by the AI's agent, which may refuse them.
func NewServer(agent Agent, options ...ServerOption) *Server {
	s := &Server{agents: map[game.Symbol]Agent{game.AI: agent}}
	for _, option := range options {
		option(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logRequests)
	r.Get("/health", s.handleHealth)
	r.Post("/findmove", s.handleFindMove)
	r.Post("/evaluate", s.handleEvaluate)
	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe blocks serving on the given port.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Info().Msgf("starting agent server on %s", addr)
	return http.ListenAndServe(addr, s)
}

func (s *Server) agentFor(player game.Symbol) Agent {
	if agent, ok := s.agents[player]; ok {
		return agent
	}
	return s.agents[game.AI]
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var payload findMoveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, meta.MAX_REQUEST_BYTES)).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request: %w", err))
		return
	}
	player := game.AI
	if payload.Player != "" {
		var err error
		if player, err = game.ParseSymbol(payload.Player); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	board, err := parseBoard(payload.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	move, metric, err := s.agentFor(player).FindMove(board, player)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, findMoveResponse{Move: move, Points: metric.Points})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var payload evaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, meta.MAX_REQUEST_BYTES)).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request: %w", err))
		return
	}
	board, err := parseBoard(payload.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	evaluations, err := Evaluate(board)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	best, err := findMax(evaluations)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, evaluateResponse{Evaluations: evaluations, Best: best.Move})
}

var (
	errBoardTooLarge     = fmt.Errorf("boards larger than %dx%d are not searched", meta.MAX_BOARD_SIZE, meta.MAX_BOARD_SIZE)
	errTooManyEmptyCells = fmt.Errorf("positions with more than %d empty cells are not searched", meta.MAX_EMPTY_CELLS)
)

func parseBoard(rows []string) (*game.Board, error) {
	if len(rows) > meta.MAX_BOARD_SIZE {
		return nil, errBoardTooLarge
	}
	state, err := game.ParseState(rows)
	if err != nil {
		return nil, err
	}
	if len(game.EmptyCells(state)) > meta.MAX_EMPTY_CELLS {
		return nil, errTooManyEmptyCells
	}
	return game.NewBoardFromState(state)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameOver), errors.Is(err, ErrNoMoves), errors.Is(err, ErrUnsupportedPlayer):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	})
}
