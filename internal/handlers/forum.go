package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/middleware"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/services"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/utils"
)

// ForumHandler serves the signed storefront API. The shop scope always
// comes from the verified query parameter, never from the body.
type ForumHandler struct {
	forum  *services.ForumService
	logger *zap.Logger
}

func NewForumHandler(forum *services.ForumService, logger *zap.Logger) *ForumHandler {
	return &ForumHandler{forum: forum, logger: logger}
}

// ListCategories handles GET /categories
func (h *ForumHandler) ListCategories(c *gin.Context) {
	categories, err := h.forum.ListCategories(c.Request.Context(), middleware.Shop(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"items": categories})
}

// ListThreads handles GET /threads?categoryId=
func (h *ForumHandler) ListThreads(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		id := utils.StringToUint(raw)
		categoryID = &id
	}

	threads, err := h.forum.ListThreads(c.Request.Context(), middleware.Shop(c), categoryID)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"items": threads})
}

type createThreadRequest struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	CategoryID  *uint    `json:"categoryId"`
	Tags        []string `json:"tags"`
	IsAnonymous bool     `json:"isAnonymous"`
	CustomerID  string   `json:"customer_id"`
	AuthorName  string   `json:"authorName"`
}

// CreateThread handles POST /threads
func (h *ForumHandler) CreateThread(c *gin.Context) {
	var req createThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, "Invalid request body")
		return
	}

	result, err := h.forum.CreateThread(c.Request.Context(), middleware.Shop(c), services.ThreadInput{
		Title:      req.Title,
		Body:       req.Body,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		Author: services.AuthorInput{
			CustomerID:  req.CustomerID,
			AuthorName:  req.AuthorName,
			IsAnonymous: req.IsAnonymous,
		},
	})
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"id": result.ID, "message": result.Message})
}

// ListComments handles GET /comments?threadId=
func (h *ForumHandler) ListComments(c *gin.Context) {
	threadID := utils.StringToUint(c.Query("threadId"))
	if threadID == 0 {
		Fail(c, "Thread is required")
		return
	}

	comments, err := h.forum.ListComments(c.Request.Context(), middleware.Shop(c), threadID)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"items": comments})
}

type createCommentRequest struct {
	ThreadID    uint   `json:"threadId"`
	Body        string `json:"body"`
	ParentID    *uint  `json:"parentId"`
	IsAnonymous bool   `json:"isAnonymous"`
	CustomerID  string `json:"customer_id"`
	AuthorName  string `json:"authorName"`
}

// CreateComment handles POST /comments
func (h *ForumHandler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, "Invalid request body")
		return
	}

	result, err := h.forum.CreateComment(c.Request.Context(), middleware.Shop(c), services.CommentInput{
		ThreadID: req.ThreadID,
		Body:     req.Body,
		ParentID: req.ParentID,
		Author: services.AuthorInput{
			CustomerID:  req.CustomerID,
			AuthorName:  req.AuthorName,
			IsAnonymous: req.IsAnonymous,
		},
	})
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"id": result.ID, "message": result.Message})
}

type castVoteRequest struct {
	TargetType  string `json:"targetType"`
	TargetID    uint   `json:"targetId"`
	CustomerID  string `json:"customer_id"`
	Fingerprint string `json:"fingerprint"`
}

// CastVote handles POST /votes
func (h *ForumHandler) CastVote(c *gin.Context) {
	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, "Invalid request body")
		return
	}

	err := h.forum.CastVote(c.Request.Context(), middleware.Shop(c), services.VoteInput{
		TargetType:  req.TargetType,
		TargetID:    req.TargetID,
		CustomerID:  req.CustomerID,
		Fingerprint: req.Fingerprint,
	})
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, nil)
}

type fileReportRequest struct {
	TargetType string `json:"targetType"`
	TargetID   uint   `json:"targetId"`
	Reason     string `json:"reason"`
	ReporterID string `json:"customer_id"`
}

// FileReport handles POST /reports
func (h *ForumHandler) FileReport(c *gin.Context) {
	var req fileReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, "Invalid request body")
		return
	}

	err := h.forum.FileReport(c.Request.Context(), middleware.Shop(c), services.ReportInput{
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Reason:     req.Reason,
		ReporterID: req.ReporterID,
	})
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, nil)
}
