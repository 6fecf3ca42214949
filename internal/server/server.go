package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leadradar/leadradar/internal/config"
	"github.com/leadradar/leadradar/internal/llm"
	"github.com/leadradar/leadradar/internal/pagespeed"
	"github.com/leadradar/leadradar/internal/places"
	"github.com/leadradar/leadradar/internal/probe"
	"github.com/leadradar/leadradar/internal/search"
)

type Server struct {
	Orchestrator *search.Orchestrator
	Interpreter  *search.Interpreter
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Falling back to environment only", cfgPath, err)
		cfg = &config.Config{}
	}
	cfg.ApplyEnv()

	if cfg.Places.APIKey == "" {
		log.Fatalf("Places API key is required (set PLACES_API_KEY or places.api_key)")
	}

	placesOpts := []places.Option{}
	if cfg.Places.Endpoint != "" {
		placesOpts = append(placesOpts, places.WithEndpoint(cfg.Places.Endpoint))
	}
	finder := places.NewClient(cfg.Places.APIKey, placesOpts...)

	proberOpts := []probe.Option{}
	if cfg.ProbeTimeoutSeconds > 0 {
		proberOpts = append(proberOpts, probe.WithTimeout(time.Duration(cfg.ProbeTimeoutSeconds)*time.Second))
	}
	if cfg.Concurrency.ProbeWindow > 0 {
		proberOpts = append(proberOpts, probe.WithWindow(cfg.Concurrency.ProbeWindow))
	}
	prober := probe.NewProber(proberOpts...)

	analyzerOpts := []pagespeed.Option{}
	if cfg.PageSpeed.Endpoint != "" {
		analyzerOpts = append(analyzerOpts, pagespeed.WithEndpoint(cfg.PageSpeed.Endpoint))
	}
	if cfg.Concurrency.AnalyzeWindow > 0 {
		analyzerOpts = append(analyzerOpts, pagespeed.WithWindow(cfg.Concurrency.AnalyzeWindow))
	}
	analyzer := pagespeed.NewAnalyzer(cfg.PageSpeed.APIKey, analyzerOpts...)

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	s := &Server{
		Orchestrator: search.NewOrchestrator(finder, prober, analyzer),
	}
	if llmClient != nil {
		s.Interpreter = search.NewInterpreter(llmClient)
	} else {
		log.Printf("No LLM provider configured; POST /search/prompt is disabled")
	}
	return s
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.POST("/search", s.Search)
	r.POST("/search/prompt", s.SearchPrompt)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Search(c *gin.Context) {
	var req search.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Industry == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "industry is required"})
		return
	}

	results, err := s.Orchestrator.Search(c.Request.Context(), req)
	if err != nil {
		log.Printf("Search failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"search_id": uuid.New().String(),
		"count":     len(results),
		"results":   results,
	})
}

type SearchPromptRequest struct {
	Prompt string  `json:"prompt"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

func (s *Server) SearchPrompt(c *gin.Context) {
	if s.Interpreter == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "No LLM provider configured"})
		return
	}

	var req SearchPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	searchReq, err := s.Interpreter.Interpret(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("Prompt interpretation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not interpret prompt"})
		return
	}
	searchReq.Lat = req.Lat
	searchReq.Lng = req.Lng

	results, err := s.Orchestrator.Search(c.Request.Context(), searchReq)
	if err != nil {
		log.Printf("Search failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"search_id":   uuid.New().String(),
		"interpreted": searchReq,
		"count":       len(results),
		"results":     results,
	})
}
