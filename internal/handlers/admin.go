package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/middleware"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/services"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/utils"
)

// AdminHandler serves the moderator surface. It sits behind the admin
// session gate, not the proxy signature: two authentication middlewares
// guarding one shared service layer.
type AdminHandler struct {
	moderation *services.ModerationService
	polls      *services.PollService
	settings   *services.SettingsService
	logger     *zap.Logger

	passwordHash []byte
}

func NewAdminHandler(
	moderation *services.ModerationService,
	polls *services.PollService,
	settings *services.SettingsService,
	adminPassword string,
	logger *zap.Logger,
) *AdminHandler {
	var hash []byte
	if adminPassword != "" {
		hash, _ = bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	}
	return &AdminHandler{
		moderation:   moderation,
		polls:        polls,
		settings:     settings,
		logger:       logger,
		passwordHash: hash,
	}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	password := c.PostForm("password")
	if len(h.passwordHash) == 0 ||
		bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.AdminSessionKey, true)
	if err := session.Save(); err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, nil)
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	OK(c, nil)
}

// shop scope for admin actions comes from the form or query string.
func adminShop(c *gin.Context) string {
	if shop := c.PostForm("shop"); shop != "" {
		return shop
	}
	return c.Query("shop")
}

// Mutating admin actions land back on the page that submitted them.
func redirectBack(c *gin.Context) {
	target := c.Request.Referer()
	if target == "" {
		target = "/admin/dashboard"
	}
	c.Redirect(http.StatusFound, target)
}

func (h *AdminHandler) act(c *gin.Context, err error) {
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	redirectBack(c)
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.moderation.Dashboard(c.Request.Context(), adminShop(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"counts": counts})
}

// Threads

func (h *AdminHandler) ListThreads(c *gin.Context) {
	threads, err := h.moderation.ListThreads(c.Request.Context(), adminShop(c), c.Query("status"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"items": threads})
}

func (h *AdminHandler) ApproveThread(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.SetThreadStatus(c.Request.Context(), adminShop(c), id, models.StatusApproved))
}

func (h *AdminHandler) RejectThread(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.SetThreadStatus(c.Request.Context(), adminShop(c), id, models.StatusRejected))
}

func (h *AdminHandler) PinThread(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.SetThreadPinned(c.Request.Context(), adminShop(c), id, true))
}

func (h *AdminHandler) UnpinThread(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.SetThreadPinned(c.Request.Context(), adminShop(c), id, false))
}

func (h *AdminHandler) CloseThread(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.SetThreadClosed(c.Request.Context(), adminShop(c), id, true))
}

func (h *AdminHandler) ReopenThread(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.SetThreadClosed(c.Request.Context(), adminShop(c), id, false))
}

// Comments

func (h *AdminHandler) ListComments(c *gin.Context) {
	comments, err := h.moderation.ListComments(c.Request.Context(), adminShop(c), c.Query("status"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"items": comments})
}

func (h *AdminHandler) ApproveComment(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.ApproveComment(c.Request.Context(), adminShop(c), id))
}

func (h *AdminHandler) RejectComment(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.RejectComment(c.Request.Context(), adminShop(c), id))
}

// Categories

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.moderation.ListCategories(c.Request.Context(), adminShop(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"items": categories})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	order, _ := strconv.Atoi(c.PostForm("order"))
	_, err := h.moderation.CreateCategory(
		c.Request.Context(),
		adminShop(c),
		c.PostForm("name"),
		c.PostForm("slug"),
		order,
	)
	h.act(c, err)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.DeleteCategory(c.Request.Context(), adminShop(c), id))
}

// Reports

func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.moderation.ListReports(c.Request.Context(), adminShop(c), c.Query("status"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"items": reports})
}

func (h *AdminHandler) ResolveReport(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.moderation.ResolveReport(c.Request.Context(), adminShop(c), id, c.PostForm("notes")))
}

// Polls

func (h *AdminHandler) ListPolls(c *gin.Context) {
	polls, err := h.polls.ListPolls(c.Request.Context(), adminShop(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	OK(c, gin.H{"items": polls})
}

func (h *AdminHandler) CreatePoll(c *gin.Context) {
	threadID := utils.StringToUint(c.PostForm("thread_id"))
	_, err := h.polls.CreatePoll(
		c.Request.Context(),
		adminShop(c),
		threadID,
		c.PostForm("question"),
		c.PostForm("options"),
	)
	h.act(c, err)
}

func (h *AdminHandler) ClosePoll(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	h.act(c, h.polls.ClosePoll(c.Request.Context(), adminShop(c), id))
}

// Settings

func (h *AdminHandler) SaveSettings(c *gin.Context) {
	allowAnonymous, _ := strconv.ParseBool(c.DefaultPostForm("allow_anonymous", "true"))
	autoApprove, _ := strconv.ParseBool(c.DefaultPostForm("auto_approve", "false"))
	editWindow := utils.StringToInt(c.DefaultPostForm("edit_window_minutes", "15"))

	h.act(c, h.settings.Save(c.Request.Context(), adminShop(c), models.Settings{
		AllowAnonymous:    allowAnonymous,
		AutoApprove:       autoApprove,
		EditWindowMinutes: editWindow,
	}))
}
