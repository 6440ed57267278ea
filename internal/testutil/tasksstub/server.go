// Package tasksstub is an in-memory stand-in for the primind tasks
// emulator, for tests.
package tasksstub

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type Task struct {
	Name         string
	Queue        string
	Body         []byte
	Headers      map[string]string
	ScheduleTime time.Time
}

type createRequest struct {
	Task struct {
		HTTPRequest struct {
			Body    string            `json:"body"`
			Headers map[string]string `json:"headers"`
		} `json:"httpRequest"`
		ScheduleTime string `json:"scheduleTime"`
	} `json:"task"`
}

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	tasks     map[string]*Task
	seq       int
	failNext  int
	failCode  int
	createCnt int
	deleteCnt int
}

func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		tasks: make(map[string]*Task),
	}

	r := gin.New()
	r.POST("/tasks", s.handleCreate)
	r.POST("/tasks/:queue", s.handleCreate)
	r.DELETE("/tasks/:queue/:name", s.handleDelete)

	s.Server = httptest.NewServer(r)
	return s
}

// FailNext makes the next n requests answer with code.
func (s *Server) FailNext(n, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
	s.failCode = code
}

func (s *Server) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	return out
}

func (s *Server) CreateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCnt
}

func (s *Server) DeleteCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteCnt
}

func (s *Server) injectFailure(c *gin.Context) bool {
	if s.failNext <= 0 {
		return false
	}
	s.failNext--
	c.JSON(s.failCode, gin.H{"error": "injected failure"})
	return true
}

func (s *Server) handleCreate(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCnt++

	if s.injectFailure(c) {
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, err := base64.StdEncoding.DecodeString(req.Task.HTTPRequest.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be base64"})
		return
	}

	scheduleTime := time.Now()
	if req.Task.ScheduleTime != "" {
		scheduleTime, err = time.Parse(time.RFC3339, req.Task.ScheduleTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduleTime"})
			return
		}
	}

	queue := c.Param("queue")
	if queue == "" {
		queue = "default"
	}

	s.seq++
	name := fmt.Sprintf("task-%d", s.seq)
	s.tasks[name] = &Task{
		Name:         name,
		Queue:        queue,
		Body:         body,
		Headers:      req.Task.HTTPRequest.Headers,
		ScheduleTime: scheduleTime,
	}

	c.JSON(http.StatusCreated, gin.H{
		"name":         fmt.Sprintf("queues/%s/tasks/%s", queue, name),
		"scheduleTime": scheduleTime.UTC().Format(time.RFC3339),
		"createTime":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleDelete(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCnt++

	if s.injectFailure(c) {
		return
	}

	name := c.Param("name")
	if _, ok := s.tasks[name]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	delete(s.tasks, name)
	c.Status(http.StatusNoContent)
}
