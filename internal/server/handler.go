package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chefguide/internal/directory"
	"chefguide/internal/models"
)

// Source provides the directory snapshot being served.
type Source interface {
	Current() *models.Directory
	Reload(ctx context.Context) (*models.Directory, error)
}

// Handler serves the chef directory.
type Handler struct {
	src Source
}

// NewHandler creates a handler over src.
func NewHandler(src Source) *Handler {
	return &Handler{src: src}
}

// RegisterRoutes mounts the directory endpoints on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
	rg.GET("/ready", h.ready)

	chefs := rg.Group("/chefs")
	chefs.Use(h.requireSnapshot)
	chefs.GET("", h.list)        // GET /chefs?q=&season=&category=&view=cards
	chefs.GET("/:id", h.getByID) // GET /chefs/:id

	rg.GET("/stats", h.requireSnapshot, h.stats)
	rg.GET("/seasons", h.requireSnapshot, h.seasons)
	rg.POST("/admin/reload", h.reload)
}

const snapshotKey = "snapshot"

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ready(c *gin.Context) {
	dir := h.src.Current()
	if dir == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"version":  dir.Fingerprint,
		"source":   dir.Source,
		"loadedAt": dir.LoadedAt,
		"chefs":    len(dir.Chefs),
	})
}

// requireSnapshot aborts with 503 until a directory is loaded and answers
// conditional requests for the current version with 304.
func (h *Handler) requireSnapshot(c *gin.Context) {
	dir := h.src.Current()
	if dir == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "directory not loaded"})
		return
	}

	etag := `"` + dir.Fingerprint + `"`
	c.Header("ETag", etag)

	if c.Request.Method == http.MethodGet && c.GetHeader("If-None-Match") == etag {
		c.AbortWithStatus(http.StatusNotModified)
		return
	}

	c.Set(snapshotKey, dir)
	c.Next()
}

func snapshot(c *gin.Context) *models.Directory {
	return c.MustGet(snapshotKey).(*models.Directory)
}

// ListResponse is the body of GET /chefs.
type ListResponse struct {
	Version string          `json:"version"`
	Query   directory.Query `json:"query"`
	Summary string          `json:"summary"`
	Total   int             `json:"total"`
	Stats   models.Stats    `json:"stats"`
	Items   any             `json:"items"`
}

func (h *Handler) list(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dir := snapshot(c)
	chefs := directory.Filter(dir.Chefs, q)

	resp := ListResponse{
		Version: dir.Fingerprint,
		Query:   q,
		Summary: directory.ResultSummary(len(chefs)),
		Total:   len(chefs),
		Stats:   dir.Stats,
		Items:   chefs,
	}

	if c.Query("view") == "cards" {
		resp.Items = directory.Cards(chefs)
	}

	c.JSON(http.StatusOK, resp)
}

func parseQuery(c *gin.Context) (directory.Query, error) {
	season, err := directory.ParseSeason(c.Query("season"))
	if err != nil {
		return directory.Query{}, err
	}

	category, err := directory.ParseCategory(c.Query("category"))
	if err != nil {
		return directory.Query{}, err
	}

	return directory.Query{
		Text:     c.Query("q"),
		Season:   season,
		Category: category,
	}, nil
}

func (h *Handler) getByID(c *gin.Context) {
	chef := snapshot(c).ChefByID(c.Param("id"))
	if chef == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if c.Query("view") == "card" {
		c.JSON(http.StatusOK, directory.NewCard(chef))
		return
	}

	c.JSON(http.StatusOK, chef)
}

func (h *Handler) stats(c *gin.Context) {
	dir := snapshot(c)

	c.JSON(http.StatusOK, gin.H{
		"version":   dir.Fingerprint,
		"stats":     dir.Stats,
		"breakdown": dir.Breakdown,
	})
}

func (h *Handler) seasons(c *gin.Context) {
	dir := snapshot(c)

	type season struct {
		ID    int `json:"id"`
		White int `json:"white"`
		Black int `json:"black"`
	}

	out := make([]season, 0, len(dir.Breakdown))
	for _, s := range dir.Breakdown {
		out = append(out, season{ID: s.Season, White: s.White.TotalChefs, Black: s.Black.TotalChefs})
	}

	c.JSON(http.StatusOK, gin.H{"seasons": out})
}

func (h *Handler) reload(c *gin.Context) {
	dir, err := h.src.Reload(c.Request.Context())
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "reloaded",
		"version": dir.Fingerprint,
		"chefs":   len(dir.Chefs),
	})
}
