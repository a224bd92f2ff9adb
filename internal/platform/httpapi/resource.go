package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// validatable is content that checks itself.
type validatable interface {
	Validate() error
}

// resource wires one content table to create, update and delete routes.
type resource[T validatable] struct {
	get    func(id int64) (T, error)
	create func(T) (int64, error)
	update func(T) error
	remove func(id int64) error
	setID  func(*T, int64)
}

// registerResource adds POST path, PUT path/:id and DELETE path/:id.
func registerResource[T validatable](g *gin.RouterGroup, path string, r resource[T], s *Server) {
	g.POST(path, func(c *gin.Context) {
		var v T
		if err := c.ShouldBindJSON(&v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request"})
			return
		}
		if err := v.Validate(); err != nil {
			s.fail(c, err)
			return
		}

		id, err := r.create(v)
		if err != nil {
			s.fail(c, err)
			return
		}
		r.setID(&v, id)
		c.JSON(http.StatusCreated, v)
	})

	g.PUT(path+"/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}

		var v T
		if err := c.ShouldBindJSON(&v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request"})
			return
		}
		r.setID(&v, id)
		if err := v.Validate(); err != nil {
			s.fail(c, err)
			return
		}
		if err := r.update(v); err != nil {
			s.fail(c, err)
			return
		}

		updated, err := r.get(id)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	g.DELETE(path+"/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := r.remove(id); err != nil {
			s.fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
