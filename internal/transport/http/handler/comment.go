package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/service"
	"taskboard-api/internal/transport/http/response"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler { return &CommentHandler{svc: svc} }

type createCommentReq struct {
	Content string `json:"content" binding:"required,max=2048"`
	User    string `json:"user" binding:"required"`
	Task    string `json:"task" binding:"required"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	cm, err := h.svc.Create(c.Request.Context(), service.CommentInput{
		Content: req.Content,
		User:    req.User,
		Task:    req.Task,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

func (h *CommentHandler) GetByID(c *gin.Context) {
	cm, err := h.svc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

func (h *CommentHandler) GetAll(c *gin.Context) {
	comments, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

type updateCommentReq struct {
	Content *string `json:"content" binding:"omitempty,max=2048"`
	User    *string `json:"user"`
	Task    *string `json:"task"`
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req updateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	cm, err := h.svc.Update(c.Request.Context(), c.Param("id"), service.CommentUpdate{
		Content: req.Content,
		User:    req.User,
		Task:    req.Task,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	cm, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}
