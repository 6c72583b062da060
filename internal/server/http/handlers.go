package httpserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"chesscore/internal/chess"
	"chesscore/internal/server/game"
	"chesscore/internal/store"
)

// History 对局记录的读取端，*store.Store 即满足。
type History interface {
	LoadGame(id string) (store.GameRecord, []store.MoveRecord, error)
	ListGames() ([]store.GameRecord, error)
}

// maxBodyBytes 请求体上限，正常请求只有几百字节
const maxBodyBytes = 64 << 10

type Handler struct {
	games   *game.Manager
	history History
}

// NewHandler history 可以为 nil（未配置存储）。
func NewHandler(m *game.Manager, history History) *Handler {
	return &Handler{games: m, history: history}
}

func writeJSON(c *gin.Context, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		logx.WithContext(c.Request.Context()).Errorf("writeJSON: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}

func readJSON(c *gin.Context, v any) bool {
	return decodeBody(c, v, false)
}

// decodeBody 失败时直接回 400（超长回 413）；optional 时允许空 body。
func decodeBody(c *gin.Context, v any, optional bool) bool {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		writeJSON(c, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "body too large", Code: "too_large"})
		return false
	}
	if err == nil && (len(body) > 0 || !optional) {
		err = sonic.Unmarshal(body, v)
	}
	if err != nil {
		writeJSON(c, http.StatusBadRequest, ErrorResponse{Error: "bad json", Code: "bad_request"})
		return false
	}
	return true
}

// writeError 规则拒绝走 4xx，引擎自身的不一致走 500。
func writeError(c *gin.Context, err error) {
	status, code := http.StatusBadRequest, "bad_request"
	switch {
	case errors.Is(err, game.ErrGameNotFound), errors.Is(err, store.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, chess.ErrIllegalMove):
		code = "illegal_move"
	case errors.Is(err, chess.ErrNoMatchingPiece):
		code = "no_matching_piece"
	case errors.Is(err, chess.ErrInvalidCoordinate):
		code = "invalid_coordinate"
	case errors.Is(err, chess.ErrInvalidMove):
		code = "invalid_move"
	case errors.Is(err, chess.ErrInvalidPlacement):
		code = "invalid_placement"
	case errors.Is(err, chess.ErrConsistencyViolation):
		status, code = http.StatusInternalServerError, "consistency_violation"
		logx.WithContext(c.Request.Context()).Errorf("engine defect: %v", err)
	}
	writeJSON(c, status, ErrorResponse{Error: err.Error(), Code: code})
}

func (h *Handler) handleNewGame(c *gin.Context) {
	var req NewGameRequest
	if !decodeBody(c, &req, true) {
		return
	}
	g, err := h.games.NewGame(req.Setup)
	if err != nil {
		writeError(c, err)
		return
	}
	logx.WithContext(c.Request.Context()).Infof("new game %s setup=%s", g.ID, g.Setup)
	writeJSON(c, http.StatusOK, stateResponse(g.State()))
}

func (h *Handler) handleState(c *gin.Context) {
	var req StateRequest
	if !readJSON(c, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, stateResponse(g.State()))
}

func (h *Handler) handlePlay(c *gin.Context) {
	var req PlayRequest
	if !readJSON(c, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(c, err)
		return
	}

	var st game.State
	switch {
	case req.Text != "":
		st, err = g.Play(req.Text)
	case req.Move != nil:
		var from, to chess.Square
		if from, err = chess.ParseSquare(req.Move.From); err == nil {
			if to, err = chess.ParseSquare(req.Move.To); err == nil {
				st, err = g.Move(from, to)
			}
		}
	default:
		err = chess.ErrInvalidMove
	}
	if err != nil {
		logx.WithContext(c.Request.Context()).Infof("game %s: rejected move: %v", req.GameID, err)
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, stateResponse(st))
}

func (h *Handler) handleHints(c *gin.Context) {
	var req HintsRequest
	if !readJSON(c, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(c, err)
		return
	}
	sq, err := chess.ParseSquare(req.Square)
	if err != nil {
		writeError(c, err)
		return
	}
	dests, err := g.Hints(sq)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, HintsResponse{Square: sq.String(), Destinations: squaresToDTO(dests)})
}

// handleGames 列出内存中的对局；带 ?stored=1 时列出存储里的。
func (h *Handler) handleGames(c *gin.Context) {
	if c.Query("stored") != "" {
		h.handleStoredGames(c)
		return
	}
	states := h.games.List()
	resp := GamesResponse{Games: make([]StateResponse, len(states))}
	for i, st := range states {
		resp.Games[i] = stateResponse(st)
	}
	writeJSON(c, http.StatusOK, resp)
}

func (h *Handler) handleStoredGames(c *gin.Context) {
	if h.history == nil {
		writeNoStore(c)
		return
	}
	recs, err := h.history.ListGames()
	if err != nil {
		logx.WithContext(c.Request.Context()).Errorf("list stored games: %v", err)
		writeJSON(c, http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "store_error"})
		return
	}
	if recs == nil {
		recs = []store.GameRecord{}
	}
	writeJSON(c, http.StatusOK, StoredGamesResponse{Games: recs})
}

// handleRemove 删除对局及其存储记录
func (h *Handler) handleRemove(c *gin.Context) {
	id := c.Param("id")
	if err := h.games.Remove(id); err != nil {
		if !errors.Is(err, game.ErrGameNotFound) {
			logx.WithContext(c.Request.Context()).Errorf("remove game %s: %v", id, err)
			writeJSON(c, http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "store_error"})
			return
		}
		writeError(c, err)
		return
	}
	logx.WithContext(c.Request.Context()).Infof("removed game %s", id)
	writeJSON(c, http.StatusOK, RemoveResponse{GameID: id})
}

func writeNoStore(c *gin.Context) {
	writeJSON(c, http.StatusNotImplemented, ErrorResponse{Error: "no store configured", Code: "no_store"})
}

func (h *Handler) handleHistory(c *gin.Context) {
	if h.history == nil {
		writeNoStore(c)
		return
	}
	rec, moves, err := h.history.LoadGame(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if moves == nil {
		moves = []store.MoveRecord{}
	}
	writeJSON(c, http.StatusOK, HistoryResponse{Game: rec, Moves: moves})
}
