package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/service"
	"taskboard-api/internal/transport/http/response"
)

// AdminHandler 后台用户管理：列表 + 封禁（软删）
type AdminHandler struct {
	svc *service.UserService
}

func NewAdminHandler(svc *service.UserService) *AdminHandler { return &AdminHandler{svc: svc} }

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		q = strings.ToLower(q)
		filtered := users[:0]
		for _, u := range users {
			if strings.Contains(strings.ToLower(u.Email), q) || strings.Contains(strings.ToLower(u.Name), q) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	c.JSON(http.StatusOK, gin.H{"total": len(users), "items": users})
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	u, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": u.ID})
}
