package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/termfolio/internal/auth"
	"github.com/vovakirdan/termfolio/internal/content"
	"github.com/vovakirdan/termfolio/internal/storage"
)

// fail maps an error to a JSON response.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, content.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.TrimPrefix(err.Error(), content.ErrInvalid.Error()+": ")})
	default:
		s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getPortfolio(c *gin.Context) {
	p, err := s.store.LoadPortfolio()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) getScores(c *gin.Context) {
	game := c.Param("game")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	scores, err := s.store.TopScores(game, limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	stats, err := s.store.GetGameStats(game)
	if err != nil {
		s.fail(c, err)
		return
	}

	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	c.JSON(http.StatusOK, gin.H{
		"game":   game,
		"scores": scores,
		"stats":  stats,
	})
}

type contactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

func (s *Server) postContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request"})
		return
	}

	msg := content.Message{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Body:      strings.TrimSpace(req.Message),
		CreatedAt: time.Now(),
	}
	if err := msg.Validate(); err != nil {
		s.fail(c, err)
		return
	}

	id, err := s.store.SaveMessage(msg)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.logger.Info("contact message received", "id", id)
	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": "Thank you for your message. I'll get back to you soon.",
	})
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request"})
		return
	}

	token, err := s.auth.Login(req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		s.logger.Warn("failed admin login", "remote", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	maxAge := int(s.auth.TTL() / time.Second)
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookie, token, maxAge, "/api/admin", "", s.config.SecureCookies, true)
	s.logger.Info("admin login", "remote", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": token, "expires_in": maxAge})
}

func (s *Server) logout(c *gin.Context) {
	s.auth.Logout(requestToken(c))
	c.SetCookie(sessionCookie, "", -1, "/api/admin", "", s.config.SecureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (s *Server) session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func (s *Server) getProfile(c *gin.Context) {
	p, err := s.store.GetProfile()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) putProfile(c *gin.Context) {
	var p content.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request"})
		return
	}
	if err := p.Validate(); err != nil {
		s.fail(c, err)
		return
	}
	if err := s.store.SaveProfile(p); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) listMessages(c *gin.Context) {
	msgs, err := s.store.ListMessages(0)
	if err != nil {
		s.fail(c, err)
		return
	}
	if msgs == nil {
		msgs = []content.Message{}
	}
	c.JSON(http.StatusOK, msgs)
}

func (s *Server) deleteMessage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteMessage(id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// paramID parses the :id path parameter, answering 400 when it is not a
// positive integer.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
