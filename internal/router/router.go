package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/handlers"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/middleware"
)

// Handlers bundles everything RegisterRoutes wires up.
type Handlers struct {
	Forum *handlers.ForumHandler
	Poll  *handlers.PollHandler
	Admin *handlers.AdminHandler
}

// RegisterRoutes lays out the two trust boundaries: the storefront
// group behind the proxy signature, and the admin group behind the
// session gate. Both end up in the same service layer.
func RegisterRoutes(r *gin.Engine, proxySecret string, requestTimeout time.Duration, h Handlers) {
	r.Use(middleware.Timeout(requestTimeout))

	// Storefront API (signed proxy requests only)
	storefront := r.Group("/")
	storefront.Use(middleware.ProxySignature(proxySecret))
	{
		storefront.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		storefront.GET("/categories", h.Forum.ListCategories)
		storefront.GET("/threads", h.Forum.ListThreads)
		storefront.POST("/threads", h.Forum.CreateThread)
		storefront.GET("/comments", h.Forum.ListComments)
		storefront.POST("/comments", h.Forum.CreateComment)
		storefront.POST("/votes", h.Forum.CastVote)
		storefront.POST("/reports", h.Forum.FileReport)
		storefront.GET("/polls/:threadId", h.Poll.GetPoll)
		storefront.POST("/polls/:threadId/vote", h.Poll.VoteInPoll)
	}

	// Moderator surface (admin session)
	r.POST("/admin/login", h.Admin.Login)
	r.POST("/admin/logout", h.Admin.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/dashboard", h.Admin.Dashboard)

		admin.GET("/threads", h.Admin.ListThreads)
		admin.POST("/threads/:id/approve", h.Admin.ApproveThread)
		admin.POST("/threads/:id/reject", h.Admin.RejectThread)
		admin.POST("/threads/:id/pin", h.Admin.PinThread)
		admin.POST("/threads/:id/unpin", h.Admin.UnpinThread)
		admin.POST("/threads/:id/close", h.Admin.CloseThread)
		admin.POST("/threads/:id/reopen", h.Admin.ReopenThread)

		admin.GET("/comments", h.Admin.ListComments)
		admin.POST("/comments/:id/approve", h.Admin.ApproveComment)
		admin.POST("/comments/:id/reject", h.Admin.RejectComment)

		admin.GET("/categories", h.Admin.ListCategories)
		admin.POST("/categories", h.Admin.CreateCategory)
		admin.POST("/categories/:id/delete", h.Admin.DeleteCategory)

		admin.GET("/reports", h.Admin.ListReports)
		admin.POST("/reports/:id/resolve", h.Admin.ResolveReport)

		admin.GET("/polls", h.Admin.ListPolls)
		admin.POST("/polls", h.Admin.CreatePoll)
		admin.POST("/polls/:id/close", h.Admin.ClosePoll)

		admin.POST("/settings", h.Admin.SaveSettings)
	}
}
