package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ninebox/sudoku-solver/service/puzzleservice"
	"github.com/ninebox/sudoku-solver/store"
	"github.com/ninebox/sudoku-solver/sudoku"
)

type Handler struct {
	source  puzzleservice.PuzzleService // client of the puzzle generator
	records store.Store
}

func NewHandler(source puzzleservice.PuzzleService, records store.Store) *Handler {
	return &Handler{source: source, records: records}
}

// Register mounts the API routes on r, typically a versioned route group.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/solve", h.Solve)
	r.GET("/board", h.Board)
	r.GET("/puzzles", h.List)
	r.GET("/puzzles/:id", h.Get)
}

type SolveRequest struct {
	Puzzle     string  `json:"puzzle"`     // digit text, 0 for empty cells
	Grid       [][]int `json:"grid"`       // alternative 9*9 form
	Save       bool    `json:"save"`
	Difficulty string  `json:"difficulty"` // recorded with the puzzle when saving
}

type SolveResponse struct {
	ID         string  `json:"id,omitempty"`
	Solution   string  `json:"solution"`
	Grid       [][]int `json:"grid"`
	Depth      int     `json:"depth"`
	DurationMs int64   `json:"duration_ms"`
}

func (h *Handler) Solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("bind solve request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body", "message": err.Error()})
		return
	}

	board, err := boardOf(&req)
	if err != nil {
		log.Err(err).Msg("read puzzle")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read puzzle", "message": err.Error()})
		return
	}

	if !sudoku.Consistent(board) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Puzzle is not valid", "message": "a digit repeats within a row, column, or box"})
		return
	}

	start := time.Now()
	sol, err := sudoku.Solve(board)
	if err != nil {
		log.Err(err).Str("puzzle", sudoku.Digits(board)).Msg("solve puzzle")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Puzzle has no solution", "message": err.Error()})
		return
	}
	elapsed := time.Since(start)

	resp := SolveResponse{
		Solution:   sudoku.Digits(sol.Board),
		Grid:       sudoku.Grid(sol.Board),
		Depth:      sol.Depth,
		DurationMs: elapsed.Milliseconds(),
	}
	if req.Save {
		record := &store.Record{
			Puzzle:     sudoku.Digits(board),
			Solution:   resp.Solution,
			Depth:      sol.Depth,
			Difficulty: req.Difficulty,
			DurationMs: resp.DurationMs,
		}
		if err := h.records.Save(c, record); err != nil {
			log.Err(err).Msg("save record")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record", "message": err.Error()})
			return
		}
		resp.ID = record.ID
	}

	log.Info().Int("depth", sol.Depth).Dur("elapsed", elapsed).Msg("solved")
	c.JSON(http.StatusOK, resp)
}

func boardOf(req *SolveRequest) (*sudoku.Board, error) {
	switch {
	case req.Puzzle != "":
		return sudoku.Parse(req.Puzzle)
	case req.Grid != nil:
		return sudoku.FromGrid(req.Grid)
	default:
		return nil, errors.New("either puzzle or grid is required")
	}
}

// Board fetches a fresh puzzle from the external generator.
func (h *Handler) Board(c *gin.Context) {
	req := &puzzleservice.FetchRequest{Difficulty: c.Query("difficulty")}
	resp, err := h.source.Fetch(c, req)
	if err != nil {
		log.Err(err).Msg("fetch puzzle")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch a puzzle", "message": err.Error()})
		return
	}

	board, err := resp.Board()
	if err != nil {
		log.Err(err).Msg("read fetched puzzle")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Puzzle service sent a malformed board", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"puzzle": sudoku.Digits(board), "grid": sudoku.Grid(board)})
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.records.List(c)
	if err != nil {
		log.Err(err).Msg("list records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *Handler) Get(c *gin.Context) {
	record, err := h.records.Load(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found", "message": err.Error()})
			return
		}
		log.Err(err).Msg("load record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load record", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}
