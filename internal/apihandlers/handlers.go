package apihandlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"titleguard/internal/app"
	"titleguard/internal/heuristics"
	"titleguard/internal/models"
)

// MaxBatchTitles caps POST /classify/batch.
const MaxBatchTitles = 1000

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

// scoreResponse is the wire form of a classification.
type scoreResponse struct {
	Score      int      `json:"score"`
	Blocked    bool     `json:"blocked"`
	Reasons    []string `json:"reasons"`
	ReasonText string   `json:"reason_text"`
	Diagnostic string   `json:"diagnostic,omitempty"`
}

func toScoreResponse(r heuristics.Result) scoreResponse {
	reasons := r.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return scoreResponse{
		Score:      r.Score,
		Blocked:    r.Blocked,
		Reasons:    reasons,
		ReasonText: r.ReasonText(),
		Diagnostic: r.Diagnostic,
	}
}

type classifyRequest struct {
	Title *string `json:"title" binding:"required"`
}

func (h *APIHandler) ClassifyHandler(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	res, err := h.App.ClassificationService.ClassifyTitle(c.Request.Context(), *req.Title)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toScoreResponse(res))
}

type classifyBatchRequest struct {
	Titles []string `json:"titles" binding:"required"`
}

func (h *APIHandler) ClassifyBatchHandler(c *gin.Context) {
	var req classifyBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Titles) > MaxBatchTitles {
		BadRequest(c, fmt.Sprintf("at most %d titles per batch", MaxBatchTitles))
		return
	}
	results, err := h.App.ClassificationService.ClassifyBatch(c.Request.Context(), req.Titles)
	if err != nil {
		FromError(c, err)
		return
	}
	out := make([]scoreResponse, len(results))
	blocked := 0
	for i, r := range results {
		out[i] = toScoreResponse(r)
		if r.Blocked {
			blocked++
		}
	}
	c.JSON(http.StatusOK, gin.H{"results": out, "total": len(out), "blocked": blocked})
}

func (h *APIHandler) CheckHandler(c *gin.Context) {
	var req models.Video
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	d, err := h.App.Filter.Decide(c.Request.Context(), req)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// --- Rules ---

func (h *APIHandler) ListRulesHandler(c *gin.Context) {
	rules, err := h.App.RuleService.ListRules(c.Request.Context())
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rules})
}

type addRuleRequest struct {
	Phrase string `json:"phrase"`
}

func (h *APIHandler) AddRuleHandler(c *gin.Context) {
	var req addRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	rule, err := h.App.RuleService.AddRule(c.Request.Context(), req.Phrase)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": rule})
}

func (h *APIHandler) RemoveRuleHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "Invalid rule ID")
		return
	}
	if err := h.App.RuleService.RemoveRule(c.Request.Context(), id); err != nil {
		FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Blocked videos ---

func (h *APIHandler) ListBlockedHandler(c *gin.Context) {
	videos, err := h.App.BlocklistService.List(c.Request.Context())
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": videos})
}

type blockRequest struct {
	// ID is a video id or any watch/shorts link.
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (h *APIHandler) BlockHandler(c *gin.Context) {
	var req blockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	v, err := h.App.BlocklistService.Block(c.Request.Context(), strings.TrimSpace(req.ID), req.Title)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": v})
}

func (h *APIHandler) UnblockHandler(c *gin.Context) {
	if err := h.App.BlocklistService.Unblock(c.Request.Context(), c.Param("id")); err != nil {
		FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *APIHandler) FilterStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.App.Filter.Stats()})
}

type setFilterRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetFilterHandler switches filtering on or off for this process.
func (h *APIHandler) SetFilterHandler(c *gin.Context) {
	var req setFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	h.App.Filter.SetEnabled(*req.Enabled)
	c.JSON(http.StatusOK, gin.H{"data": h.App.Filter.Stats()})
}

// HealthHandler reports readiness of the local database.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	if h.App.Store != nil {
		if err := h.App.Store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "threshold": h.App.ClassificationService.Threshold()})
}
