// Package remindstub is an in-memory reminder store for tests.
package remindstub

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type Reminder struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	Priority          string     `json:"priority"`
	Type              string     `json:"type"`
	DueDate           *time.Time `json:"due_date"`
	Recurrence        string     `json:"recurrence"`
	RecurrenceEndDate *time.Time `json:"recurrence_end_date,omitempty"`
	Completed         bool       `json:"completed"`
	CompletedBy       string     `json:"completed_by,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

type completionRequest struct {
	CompletedBy string    `json:"completed_by" binding:"required"`
	CompletedAt time.Time `json:"completed_at"`
}

type Server struct {
	*httptest.Server

	mu         sync.Mutex
	reminders  map[string]*Reminder
	requestIDs []string
	failCode   int
}

func New(reminders ...Reminder) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{reminders: make(map[string]*Reminder)}
	for i := range reminders {
		r := reminders[i]
		s.reminders[r.ID] = &r
	}

	r := gin.New()
	r.Use(s.captureRequestID)
	r.GET("/api/v1/reminders/:id", s.handleGet)
	r.POST("/api/v1/reminders/:id/completion", s.handleComplete)
	r.DELETE("/api/v1/reminders/:id/completion", s.handleReopen)

	s.Server = httptest.NewServer(r)
	return s
}

// FailWith makes every following request answer with code. Zero restores
// normal behaviour.
func (s *Server) FailWith(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCode = code
}

func (s *Server) Reminder(id string) (Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders[id]
	if !ok {
		return Reminder{}, false
	}
	return *r, true
}

func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

func (s *Server) captureRequestID(c *gin.Context) {
	s.mu.Lock()
	s.requestIDs = append(s.requestIDs, c.GetHeader("x-request-id"))
	failCode := s.failCode
	s.mu.Unlock()

	if failCode != 0 {
		c.AbortWithStatus(failCode)
		return
	}
	c.Next()
}

func (s *Server) handleGet(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) handleComplete(c *gin.Context) {
	var req completionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders[c.Param("id")]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	completedAt := req.CompletedAt
	r.Completed = true
	r.CompletedBy = req.CompletedBy
	r.CompletedAt = &completedAt

	c.Status(http.StatusNoContent)
}

func (s *Server) handleReopen(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders[c.Param("id")]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	r.Completed = false
	r.CompletedBy = ""
	r.CompletedAt = nil

	c.Status(http.StatusOK)
}
