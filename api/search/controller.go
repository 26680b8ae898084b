package searchapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-pathfinder/api/apierr"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const defaultHistoryLimit = 20

// SearchController runs searches on the caller's workspace.
type SearchController struct {
	runner   i.SearchRunner
	editor   i.GridEditor
	upgrader websocket.Upgrader
	logger   i.Logger
}

// NewSearchController creates a SearchController. The WebSocket upgrader
// accepts any origin; requests are still authenticated by token.
func NewSearchController(runner i.SearchRunner, editor i.GridEditor, logger i.Logger) *SearchController {
	return &SearchController{
		runner: runner,
		editor: editor,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (sc *SearchController) RegisterProtected(route *gin.RouterGroup) {
	s := route.Group("/search")
	{
		s.POST("", sc.run)
		s.GET("/stream", sc.stream)
		s.GET("/history", sc.history)
	}
}

// run searches without pacing and returns the outcome.
func (sc *SearchController) run(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	out, err := sc.runner.RunSearch(ctx.Request.Context(), owner, false, nil)
	if err != nil {
		apierr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOutcomeResponse(out))
}

// stream upgrades to a WebSocket and sends every event of a paced run,
// followed by the outcome. Closing the socket cancels the run.
func (sc *SearchController) stream(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	// Report precondition failures as plain HTTP before upgrading.
	if err := search.Ready(sc.editor.Snapshot(owner)); err != nil {
		apierr.Write(ctx, err)
		return
	}

	conn, err := sc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		sc.logger.Warning(fmt.Sprintf("upgrading search stream for %s: %v", owner, err))
		return
	}
	client := &streamClient{conn: conn}
	defer client.close()

	runCtx, cancel := context.WithCancel(ctx.Request.Context())
	defer cancel()
	go client.watch(cancel)

	out, err := sc.runner.RunSearch(runCtx, owner, true, func(ev search.Event) error {
		return client.send(StreamFrame{Type: FrameEvent, Event: &ev})
	})
	if err != nil {
		_ = client.send(StreamFrame{Type: FrameError, Error: apierr.Message(err)})
		return
	}

	if out.Status == search.StatusCancelled {
		sc.logger.Info(fmt.Sprintf("search stream for %s cancelled: %v", owner, out.Cause))
	}
	_ = client.send(StreamFrame{Type: FrameOutcome, Outcome: newOutcomeResponse(out)})
}

func (sc *SearchController) history(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	runs, err := sc.runner.History(ctx.Request.Context(), owner, limit)
	if err != nil {
		apierr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"runs": runs})
}

func callerID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := identity.OwnerFrom(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
	return id, ok
}
