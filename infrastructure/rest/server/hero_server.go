package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hero-lab/domain"
	"hero-lab/errors"
	"hero-lab/repositories"
)

// HeroServer exposes the hero store as the /api/heroes REST surface the
// clients expect, with the classic in-memory simulator's semantics:
// a filtered ?id= query answers with an array, GET by path answers 404
// for a missing record, PUT upserts the full record at the collection
// URL, and DELETE is idempotent.
type HeroServer struct {
	log  *slog.Logger
	repo repositories.IHeroRepository
}

func NewHeroServer(log *slog.Logger, repo repositories.IHeroRepository) *HeroServer {
	return &HeroServer{log: log, repo: repo}
}

// Router builds the gin engine with request tagging and access logging.
func (s *HeroServer) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.accessLog())

	api := router.Group("/api")
	api.GET("/heroes", s.list)
	api.GET("/heroes/:id", s.get)
	api.POST("/heroes", s.create)
	api.PUT("/heroes", s.update)
	api.DELETE("/heroes/:id", s.delete)

	return router
}

// list serves the whole collection, or a filtered view when the ?id= or
// ?name= query forms are used. Both filtered forms answer with an array.
func (s *HeroServer) list(c *gin.Context) {
	if idParam := c.Query("id"); idParam != "" {
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
			return
		}
		hero, err := s.repo.Get(id)
		if err == errors.ErrHeroNotFound {
			c.JSON(http.StatusOK, []domain.Hero{})
			return
		}
		if err != nil {
			s.storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, []domain.Hero{hero})
		return
	}

	if term := c.Query("name"); term != "" {
		heroes, err := s.repo.SearchByName(c.Request.Context(), term)
		if err != nil {
			s.storeError(c, err)
			return
		}
		if heroes == nil {
			heroes = []domain.Hero{}
		}
		c.JSON(http.StatusOK, heroes)
		return
	}

	heroes, err := s.repo.All()
	if err != nil {
		s.storeError(c, err)
		return
	}
	if heroes == nil {
		heroes = []domain.Hero{}
	}
	c.JSON(http.StatusOK, heroes)
}

func (s *HeroServer) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}
	hero, err := s.repo.Get(id)
	if err == errors.ErrHeroNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "hero not found"})
		return
	}
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

func (s *HeroServer) create(c *gin.Context) {
	var payload domain.Hero
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hero, err := domain.NewHero(payload.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := s.repo.Create(hero.Name)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *HeroServer) update(c *gin.Context) {
	var hero domain.Hero
	if err := c.ShouldBindJSON(&hero); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := hero.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.repo.Upsert(hero); err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

func (s *HeroServer) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}
	if err := s.repo.Delete(id); err != nil {
		s.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *HeroServer) storeError(c *gin.Context, err error) {
	s.log.Error("hero store failure", "err", err, "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

const requestIDKey = "request_id"

// requestID tags every request so store failures can be correlated with
// access log lines.
func (s *HeroServer) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *HeroServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		)
	}
}
