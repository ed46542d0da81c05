// Package serve exposes the annotation engine over HTTP. The message
// endpoint mirrors the runtime messages the page overlay exchanges with
// its controller.
package serve

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/grephuman/grephuman/models"
	"github.com/grephuman/grephuman/pkg/annotate"
	"github.com/grephuman/grephuman/pkg/serp"
)

// Server serializes access to one engine and its page.
type Server struct {
	mu     sync.Mutex
	engine *annotate.Engine
	page   *serp.Page
}

func NewServer(page *serp.Page) *Server {
	return &Server{
		engine: annotate.NewEngine(page),
		page:   page,
	}
}

// LabelAll runs a labeling pass under the server lock.
func (s *Server) LabelAll() annotate.PassReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.LabelAll()
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/page", s.handlePage)
	router.POST("/message", s.handleMessage)

	return router
}

// handlePage renders the current annotated document.
func (s *Server) handlePage(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	html, err := s.page.HTML()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) handleMessage(c *gin.Context) {
	var msg models.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid message"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case models.MessagePing:
		c.JSON(http.StatusOK, models.PongResponse{Pong: true})

	case models.MessageGetState:
		state := s.engine.State()
		c.JSON(http.StatusOK, models.StateResponse{
			LabelsEnabled:  state.LabelsEnabled,
			HiddenCount:    state.HiddenCount,
			IsGoogleSearch: s.engine.IsResultsPage(),
		})

	case models.MessageToggleLabels:
		enabled := !s.engine.State().LabelsEnabled
		if msg.Enabled != nil {
			enabled = *msg.Enabled
		}
		s.engine.SetEnabled(enabled)
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true})

	case models.MessageHideAIResults:
		count := s.engine.HideFlagged()
		c.JSON(http.StatusOK, models.HiddenCountResponse{HiddenCount: count})

	case models.MessageShowAllResults:
		s.engine.ShowAll()
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true})

	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown message"})
	}
}
