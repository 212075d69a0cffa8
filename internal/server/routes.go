package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/services"
)

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		api.GET("/directory", s.handleDirectory)
		api.GET("/facets", s.handleFacets)
		api.GET("/items/:id", s.handleItem)
		if s.cfg.MatchingEnabled() {
			api.GET("/items/:id/matches", s.handleMatches)
		}
	}
}

// csvURL resolves the source URL for a request: the handed-over csv
// query parameter wins over the configured default.
func (s *Server) csvURL(c *gin.Context) string {
	if v := strings.TrimSpace(c.Query("csv")); v != "" {
		return v
	}
	return s.cfg.Source.CSVURL
}

func (s *Server) handleDirectory(c *gin.Context) {
	state := filterStateFromQuery(c)

	var sortAsc *bool
	switch c.Query("sort") {
	case "asc":
		v := true
		sortAsc = &v
	case "desc":
		v := false
		sortAsc = &v
	}

	result, err := s.directory.Handle(c.Request.Context(), s.csvURL(c), state, sortAsc)
	if err != nil {
		s.renderError(c, err)
		return
	}

	if !s.cfg.PitchEnabled() {
		for i := range result.Grupos {
			result.Grupos[i].Pitch = ""
		}
		for i := range result.Empresas {
			result.Empresas[i].Pitch = ""
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"grupos":   result.Grupos,
		"empresas": result.Empresas,
		"facets":   result.Facets,
		"count":    result.Total(),
		"warnings": result.Warnings,
	})
}

func (s *Server) handleFacets(c *gin.Context) {
	result, err := s.directory.Handle(c.Request.Context(), s.csvURL(c), services.NewFilterState(), nil)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result.Facets)
}

func (s *Server) handleItem(c *gin.Context) {
	result, err := s.item.Handle(c.Request.Context(), c.Param("id"), strings.TrimSpace(c.Query("csv")))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleMatches(c *gin.Context) {
	result, err := s.match.Handle(c.Request.Context(), c.Param("id"), s.csvURL(c))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// filterStateFromQuery reads comma-separated facet selections and the
// free-text query.
func filterStateFromQuery(c *gin.Context) services.FilterState {
	state := services.NewFilterState()
	for _, t := range splitParam(c.Query("tematica")) {
		state.Tematica[t] = true
	}
	for _, t := range splitParam(c.Query("convo")) {
		state.Convo[t] = true
	}
	state.Query = c.Query("q")
	return state
}

func splitParam(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = entities.NormalizeTag(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// renderError maps the error taxonomy onto status codes and the three
// distinct user messages.
func (s *Server) renderError(c *gin.Context, err error) {
	var (
		fetchErr    *entities.FetchError
		configErr   *entities.ConfigurationError
		notFoundErr *entities.NotFoundError
	)
	switch {
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &configErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": configErr.Error()})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not download the directory data", "detail": fetchErr.Error()})
	default:
		s.log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
