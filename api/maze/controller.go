package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/frontier-maze/domain"
	"github.com/beka-birhanu/frontier-maze/maze"
	"github.com/beka-birhanu/frontier-maze/service"
	"github.com/beka-birhanu/frontier-maze/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves generated mazes.
type MazeController struct {
	generator i.MazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze controller requires a generator")
	}
	return &MazeController{generator: g}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes/render", mc.render)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/mazes", mc.create)
}

// render writes the text rendering of a fresh maze.
func (mc *MazeController) render(ctx *gin.Context) {
	size := mc.generator.DefaultSize()
	if raw, ok := ctx.GetQuery("size"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
			return
		}
		size = parsed
	}

	var seed *uint64
	if raw, ok := ctx.GetQuery("seed"); ok {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an unsigned integer"})
			return
		}
		seed = &parsed
	}

	generated, err := mc.generator.Generate(ctx.Request.Context(), size, seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("X-Maze-ID", generated.ID.String())
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(generated.Maze.String()))
}

// create builds a maze and returns its full description.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	size := mc.generator.DefaultSize()
	if request.Size != nil {
		size = *request.Size
	}

	generated, err := mc.generator.Generate(ctx.Request.Context(), size, request.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(generated))
}

func toResponse(g *dmn.GeneratedMaze) *MazeResponse {
	edges := g.Maze.Passages().Edges()
	pairs := make([][2]int, len(edges))
	for k, e := range edges {
		pairs[k] = [2]int{e.Parent, e.Child}
	}

	return &MazeResponse{
		ID:        g.ID,
		Size:      g.Maze.Size(),
		Seed:      g.Seed,
		CreatedAt: g.CreatedAt,
		Edges:     pairs,
		Grid:      g.Maze.Grid(),
		Rendering: g.Maze.String(),
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidSize), errors.Is(err, service.ErrSizeTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
