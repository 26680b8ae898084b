package gridapi

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/apierr"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GridController serves the caller's workspace grid.
type GridController struct {
	editor i.GridEditor
}

func NewGridController(editor i.GridEditor) *GridController {
	return &GridController{editor: editor}
}

// RegisterPublic registers public routes.
func (gc *GridController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (gc *GridController) RegisterProtected(route *gin.RouterGroup) {
	g := route.Group("/grid")
	{
		g.GET("", gc.get)
		g.POST("/walls", gc.paint)
		g.POST("/walls/toggle", gc.withCell(gc.editor.ToggleWall))
		g.PUT("/start", gc.withCell(gc.editor.SetStart))
		g.PUT("/end", gc.withCell(gc.editor.SetEnd))
		g.POST("/reset", gc.reset)
		g.POST("/maze", gc.maze)
	}
}

func (gc *GridController) get(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newGridResponse(gc.editor.Snapshot(owner)))
}

func (gc *GridController) paint(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	var request PaintRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := gc.editor.SetWalls(owner, request.Cells, request.Occupied)
	respond(ctx, g, err)
}

// withCell adapts a single-cell edit into a handler reading {"row","col"}.
func (gc *GridController) withCell(edit func(uuid.UUID, grid.Coord) (*grid.Grid, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		owner, ok := callerID(ctx)
		if !ok {
			return
		}

		var cell grid.Coord
		if err := ctx.ShouldBindJSON(&cell); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		g, err := edit(owner, cell)
		respond(ctx, g, err)
	}
}

func (gc *GridController) reset(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}
	g, err := gc.editor.Reset(owner)
	respond(ctx, g, err)
}

func (gc *GridController) maze(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	var request MazeRequest
	// An empty body is allowed.
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	g, err := gc.editor.Carve(owner, seed)
	if err != nil {
		apierr.Write(ctx, err)
		return
	}

	resp := newGridResponse(g)
	resp.Seed = &seed
	ctx.JSON(http.StatusOK, resp)
}

func respond(ctx *gin.Context, g *grid.Grid, err error) {
	if err != nil {
		apierr.Write(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newGridResponse(g))
}

func callerID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := identity.OwnerFrom(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
	return id, ok
}
