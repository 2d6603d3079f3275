package handlers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/middleware"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/services"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/utils"
)

type PollHandler struct {
	polls  *services.PollService
	logger *zap.Logger
}

func NewPollHandler(polls *services.PollService, logger *zap.Logger) *PollHandler {
	return &PollHandler{polls: polls, logger: logger}
}

// GetPoll handles GET /polls/:threadId
func (h *PollHandler) GetPoll(c *gin.Context) {
	threadID := utils.StringToUint(c.Param("threadId"))
	poll, err := h.polls.GetPoll(c.Request.Context(), middleware.Shop(c), threadID)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"poll": poll})
}

// flexInt accepts both 2 and "2"; the widget has shipped both.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

type pollVoteRequest struct {
	OptionID    flexInt `json:"optionId"`
	CustomerID  string  `json:"customer_id"`
	Fingerprint string  `json:"fingerprint"`
}

// VoteInPoll handles POST /polls/:threadId/vote
func (h *PollHandler) VoteInPoll(c *gin.Context) {
	threadID := utils.StringToUint(c.Param("threadId"))

	var req pollVoteRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		Fail(c, "Invalid request body")
		return
	}

	voterKey := req.CustomerID
	if voterKey == "" {
		voterKey = req.Fingerprint
	}

	err := h.polls.VoteInPoll(c.Request.Context(), middleware.Shop(c), threadID, int(req.OptionID), voterKey)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, nil)
}
