package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/service"
	"taskboard-api/internal/transport/http/response"
)

type LabelHandler struct {
	svc *service.LabelService
}

func NewLabelHandler(svc *service.LabelService) *LabelHandler { return &LabelHandler{svc: svc} }

type createLabelReq struct {
	Name  string `json:"name" binding:"required,max=64"`
	Color string `json:"color" binding:"required,max=16"`
}

func (h *LabelHandler) Create(c *gin.Context) {
	var req createLabelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	l, err := h.svc.Create(c.Request.Context(), service.LabelInput{Name: req.Name, Color: req.Color})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *LabelHandler) GetByID(c *gin.Context) {
	l, err := h.svc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LabelHandler) GetAll(c *gin.Context) {
	labels, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, labels)
}

type updateLabelReq struct {
	Name  *string `json:"name" binding:"omitempty,max=64"`
	Color *string `json:"color" binding:"omitempty,max=16"`
}

func (h *LabelHandler) Update(c *gin.Context) {
	var req updateLabelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	l, err := h.svc.Update(c.Request.Context(), c.Param("id"), service.LabelUpdate{Name: req.Name, Color: req.Color})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LabelHandler) Delete(c *gin.Context) {
	l, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}
