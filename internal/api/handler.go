package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mr1hm/go-flood-safety/internal/broadcast"
	"github.com/mr1hm/go-flood-safety/internal/geocode"
	"github.com/mr1hm/go-flood-safety/internal/models"
	"github.com/mr1hm/go-flood-safety/internal/render"
	"github.com/mr1hm/go-flood-safety/internal/repository"
	"github.com/mr1hm/go-flood-safety/internal/risk"
	"github.com/mr1hm/go-flood-safety/internal/weather"
)

// WeatherService is the slice of the weather client the handlers need.
type WeatherService interface {
	Current(ctx context.Context, city string) (*models.WeatherSnapshot, error)
}

type Handler struct {
	store       repository.AlertStore
	renderer    *render.Renderer
	weather     WeatherService
	geocoder    geocode.Geocoder
	broadcaster *broadcast.Broadcaster
}

func NewHandler(store repository.AlertStore, weatherSvc WeatherService, geocoder geocode.Geocoder, broadcaster *broadcast.Broadcaster) *Handler {
	return &Handler{
		store:       store,
		renderer:    render.NewRenderer(),
		weather:     weatherSvc,
		geocoder:    geocoder,
		broadcaster: broadcaster,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/alerts", h.createAlert)
	r.GET("/api/alerts", h.listAlerts)
	r.GET("/api/alerts/html", h.renderAlerts)
	r.DELETE("/api/alerts", h.clearAlerts)
	r.GET("/api/alerts/stream", h.streamAlerts)
	r.GET("/api/weather", h.getWeather)
	r.POST("/api/risk", h.assessRisk)
	r.GET("/api/location/reverse", h.reverseGeocode)
	r.GET("/health", h.health)
}

type createAlertRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Severity    string `json:"severity"`
}

func (h *Handler) createAlert(c *gin.Context) {
	var req createAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide title and description"})
		return
	}

	alert := models.Alert{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Location:    strings.TrimSpace(req.Location),
		Severity:    models.ParseAlertSeverity(req.Severity),
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.store.Append(c.Request.Context(), alert); err != nil {
		slog.Error("error appending alert", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save alert"})
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.Broadcast(&alert)
	}

	c.JSON(http.StatusCreated, alert)
}

func (h *Handler) listAlerts(c *gin.Context) {
	alerts, err := h.store.Load(c.Request.Context())
	if err != nil {
		slog.Error("error loading alerts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alerts"})
		return
	}

	// Display order is newest first.
	out := make([]models.Alert, 0, len(alerts))
	for i := len(alerts) - 1; i >= 0; i-- {
		out = append(out, alerts[i])
	}

	c.JSON(http.StatusOK, gin.H{"alerts": out, "count": len(out)})
}

func (h *Handler) renderAlerts(c *gin.Context) {
	alerts, err := h.store.Load(c.Request.Context())
	if err != nil {
		slog.Error("error loading alerts", "error", err)
		c.String(http.StatusInternalServerError, "failed to fetch alerts")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.renderer.RenderAlerts(c.Writer, alerts); err != nil {
		slog.Error("error rendering alerts", "error", err)
	}
}

func (h *Handler) clearAlerts(c *gin.Context) {
	// The UI asks the user to confirm before this request is made; the flag
	// keeps an unconfirmed call from wiping the collection.
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required: pass confirm=true"})
		return
	}

	if err := h.store.Clear(c.Request.Context()); err != nil {
		slog.Error("error clearing alerts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *Handler) streamAlerts(c *gin.Context) {
	id, ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case alert, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("alert", alert)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *Handler) getWeather(c *gin.Context) {
	snap, err := h.weather.Current(c.Request.Context(), strings.TrimSpace(c.Query("city")))
	if errors.Is(err, weather.ErrNoAPIKey) {
		c.JSON(http.StatusOK, gin.H{
			"message": "No API key provided. Configure an OpenWeatherMap API key to fetch live data.",
		})
		return
	}
	if err != nil {
		slog.Error("weather lookup failed", "city", c.Query("city"), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch weather. Check API key, network, and city name.",
		})
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *Handler) assessRisk(c *gin.Context) {
	var input risk.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := validate.Struct(input.Location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	c.JSON(http.StatusOK, risk.Assess(input))
}

func (h *Handler) reverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid lat and lng query parameters are required"})
		return
	}

	res, err := h.geocoder.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		slog.Error("reverse geocode failed", "lat", lat, "lng", lng, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to resolve location: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
