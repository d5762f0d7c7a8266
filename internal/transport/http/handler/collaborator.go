package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/service"
	"taskboard-api/internal/transport/http/response"
)

type CollaboratorHandler struct {
	svc *service.CollaboratorService
}

func NewCollaboratorHandler(svc *service.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{svc: svc}
}

type createCollaboratorReq struct {
	User  string `json:"user" binding:"required"`
	Board string `json:"board" binding:"required"`
	Role  string `json:"role" binding:"omitempty,oneof=owner editor viewer"`
}

func (h *CollaboratorHandler) Create(c *gin.Context) {
	var req createCollaboratorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	col, err := h.svc.Create(c.Request.Context(), service.CollaboratorInput{
		User:  req.User,
		Board: req.Board,
		Role:  req.Role,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

func (h *CollaboratorHandler) GetByID(c *gin.Context) {
	col, err := h.svc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

func (h *CollaboratorHandler) GetAll(c *gin.Context) {
	collabs, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, collabs)
}

type updateCollaboratorReq struct {
	User  *string `json:"user"`
	Board *string `json:"board"`
	Role  *string `json:"role" binding:"omitempty,oneof=owner editor viewer"`
}

func (h *CollaboratorHandler) Update(c *gin.Context) {
	var req updateCollaboratorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	col, err := h.svc.Update(c.Request.Context(), c.Param("id"), service.CollaboratorUpdate{
		User:  req.User,
		Board: req.Board,
		Role:  req.Role,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

func (h *CollaboratorHandler) Delete(c *gin.Context) {
	col, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}
