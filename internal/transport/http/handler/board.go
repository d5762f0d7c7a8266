package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/service"
	"taskboard-api/internal/transport/http/response"
)

type BoardHandler struct {
	svc *service.BoardService
}

func NewBoardHandler(svc *service.BoardService) *BoardHandler { return &BoardHandler{svc: svc} }

type createBoardReq struct {
	Name        string `json:"name" binding:"required,max=128"`
	Owner       string `json:"owner" binding:"required"`
	Description string `json:"description" binding:"omitempty,max=512"`
	Visibility  string `json:"visibility" binding:"omitempty,oneof=private public team"`
}

func (h *BoardHandler) Create(c *gin.Context) {
	var req createBoardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	b, err := h.svc.Create(c.Request.Context(), service.BoardInput{
		Name:        req.Name,
		Owner:       req.Owner,
		Description: req.Description,
		Visibility:  req.Visibility,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BoardHandler) GetByID(c *gin.Context) {
	b, err := h.svc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BoardHandler) GetAll(c *gin.Context) {
	boards, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

type updateBoardReq struct {
	Name        *string `json:"name" binding:"omitempty,max=128"`
	Owner       *string `json:"owner"`
	Description *string `json:"description" binding:"omitempty,max=512"`
	Visibility  *string `json:"visibility" binding:"omitempty,oneof=private public team"`
}

func (h *BoardHandler) Update(c *gin.Context) {
	var req updateBoardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	b, err := h.svc.Update(c.Request.Context(), c.Param("id"), service.BoardUpdate{
		Name:        req.Name,
		Owner:       req.Owner,
		Description: req.Description,
		Visibility:  req.Visibility,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BoardHandler) Delete(c *gin.Context) {
	b, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
