package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sound_tracker/internal/domain"
	"sound_tracker/internal/enrich"
	"sound_tracker/internal/service"
)

// Collector runs one full collection cycle.
type Collector interface {
	Collect(ctx context.Context) (*domain.CollectResult, error)
}

// EnrichmentRunner enriches a single sound on demand.
type EnrichmentRunner interface {
	EnrichSound(ctx context.Context, id string) (*service.EnrichOutcome, error)
}

// Dashboard serves the read models.
type Dashboard interface {
	Overview(ctx context.Context) (*service.Overview, error)
	SoundDetail(ctx context.Context, id string) (*service.SoundDetail, error)
}

type Handler struct {
	collector  Collector
	enrichment EnrichmentRunner
	dashboard  Dashboard
	cronSecret string
	logger     *slog.Logger
}

func NewHandler(collector Collector, enrichment EnrichmentRunner, dashboard Dashboard, cronSecret string, logger *slog.Logger) *Handler {
	return &Handler{
		collector:  collector,
		enrichment: enrichment,
		dashboard:  dashboard,
		cronSecret: cronSecret,
		logger:     logger.With("component", "api"),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Collect is the scheduled trigger. It requires the cron bearer secret
// when one is configured; Refresh is the unauthenticated manual trigger.
func (h *Handler) Collect(c echo.Context) error {
	if h.cronSecret != "" {
		auth := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != h.cronSecret {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		}
	}
	return h.runCollection(c)
}

func (h *Handler) Refresh(c echo.Context) error {
	return h.runCollection(c)
}

type collectResponse struct {
	Success bool   `json:"success"`
	Source  string `json:"source,omitempty"`
	Count   int    `json:"count"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) runCollection(c echo.Context) error {
	result, err := h.collector.Collect(c.Request().Context())

	if errors.Is(err, service.ErrRunActive) {
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "a collection run is already in progress"})
	}
	if errors.Is(err, service.ErrAllSourcesFailed) {
		return c.JSON(http.StatusBadGateway, collectResponse{
			Success: false,
			Error:   "all data sources failed",
		})
	}
	if err != nil {
		h.logger.Error("collection failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	resp := collectResponse{
		Success: result.Status != domain.CollectionFailed,
		Source:  result.Source,
		Count:   result.Collected,
	}
	if result.Failed > 0 {
		resp.Error = "some sounds failed to persist"
	}
	return c.JSON(http.StatusOK, resp)
}

type statsResponse struct {
	TotalTracked int     `json:"total_tracked"`
	RisingCount  int     `json:"rising_count"`
	FallingCount int     `json:"falling_count"`
	AvgGrowth    float64 `json:"avg_growth"`
	LastUpdated  *string `json:"last_updated"`
}

type overviewResponse struct {
	Sounds []soundResponse `json:"sounds"`
	Stats  statsResponse   `json:"stats"`
}

func (h *Handler) ListSounds(c echo.Context) error {
	overview, err := h.dashboard.Overview(c.Request().Context())
	if err != nil {
		h.logger.Error("overview failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	resp := overviewResponse{
		Sounds: make([]soundResponse, 0, len(overview.Sounds)),
		Stats: statsResponse{
			TotalTracked: overview.Stats.TotalTracked,
			RisingCount:  overview.Stats.RisingCount,
			FallingCount: overview.Stats.FallingCount,
			AvgGrowth:    overview.Stats.AvgGrowth,
			LastUpdated:  timePtrString(overview.Stats.LastUpdated),
		},
	}
	for _, s := range overview.Sounds {
		resp.Sounds = append(resp.Sounds, toSoundResponse(s.Sound, s.Sparkline))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSound(c echo.Context) error {
	detail, err := h.dashboard.SoundDetail(c.Request().Context(), c.Param("id"))
	if errors.Is(err, domain.ErrSoundNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "sound not found"})
	}
	if err != nil {
		h.logger.Error("sound detail failed", "error", err, "sound_id", c.Param("id"))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, toDetailResponse(detail))
}

type enrichResponse struct {
	Status        string `json:"status"`
	EnrichedAt    string `json:"enriched_at"`
	UsageCount    int64  `json:"usage_count,omitempty"`
	VideosCount   int    `json:"videos_count,omitempty"`
	HashtagsCount int    `json:"hashtags_count,omitempty"`
}

func (h *Handler) EnrichSound(c echo.Context) error {
	outcome, err := h.enrichment.EnrichSound(c.Request().Context(), c.Param("id"))

	switch {
	case errors.Is(err, domain.ErrSoundNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "sound not found"})
	case errors.Is(err, service.ErrRunActive):
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "a collection run is already in progress"})
	case errors.Is(err, enrich.ErrUnavailable):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "enrichment data unavailable"})
	case err != nil:
		h.logger.Error("enrichment failed", "error", err, "sound_id", c.Param("id"))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, enrichResponse{
		Status:        string(outcome.Status),
		EnrichedAt:    outcome.EnrichedAt.UTC().Format(timeFormat),
		UsageCount:    outcome.UsageCount,
		VideosCount:   outcome.VideosCount,
		HashtagsCount: outcome.HashtagsCount,
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
