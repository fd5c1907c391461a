package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) CastVote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Direction string `json:"direction"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Direction == "" {
		MissingField(c, "direction")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.voting.CastVote(ctx, CurrentUser(c), id, req.Direction); err != nil {
		DomainError(c, err)
		return
	}

	total, err := h.voting.VoteTotal(ctx, id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artwork_id": id, "vote_total": total})
}

func (h *HTTPHandler) VoteTotal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	total, err := h.voting.VoteTotal(ctx, id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artwork_id": id, "vote_total": total})
}

func (h *HTTPHandler) ResetVotes(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.voting.ResetVotes(ctx, CurrentUser(c), id, req.Reason); err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artwork_id": id, "vote_total": int64(0)})
}

func (h *HTTPHandler) VoteResetHistory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	logs, err := h.voting.ResetHistory(ctx, CurrentUser(c), id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
