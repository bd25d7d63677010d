package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"fulltree/experiments/metrics"
	"fulltree/game"
	"io"
	"net/http"
	"strings"
	"time"
)

type remoteAgent struct {
	url    string
	client *http.Client
}

// NewRemoteAgent asks the agent server at url for moves. A nil client uses
// http.DefaultClient.
func NewRemoteAgent(url string, client *http.Client) Agent {
	if client == nil {
		client = http.DefaultClient
	}
	return &remoteAgent{url: strings.TrimRight(url, "/"), client: client}
}

func (a *remoteAgent) FindMove(board *game.Board, player game.Symbol) (game.Position, metrics.SearchMetric, error) {
	start := time.Now()
	payload := findMoveRequest{
		Board:  board.StateCopy().Rows(),
		Player: player.String(),
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("agent server returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var result findMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("failed to decode move: %w", err)
	}
	return result.Move, metrics.SearchMetric{
		Agent:    "remote",
		Duration: time.Since(start),
		Points:   result.Points,
	}, nil
}
