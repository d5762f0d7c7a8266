package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/service"
	"taskboard-api/internal/transport/http/response"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler { return &TaskHandler{svc: svc} }

type createTaskReq struct {
	Name        string     `json:"name" binding:"required,max=128"`
	Description string     `json:"description" binding:"required,max=1024"`
	Owner       string     `json:"owner" binding:"required"`
	Board       string     `json:"board" binding:"required"`
	Status      string     `json:"status" binding:"required,oneof=todo in_progress done"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Label       string     `json:"label"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	t, err := h.svc.Create(c.Request.Context(), service.TaskInput{
		Name:        req.Name,
		Description: req.Description,
		Owner:       req.Owner,
		Board:       req.Board,
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Label:       req.Label,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	t, err := h.svc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TaskHandler) GetAll(c *gin.Context) {
	tasks, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

type updateTaskReq struct {
	Name        *string    `json:"name" binding:"omitempty,max=128"`
	Description *string    `json:"description" binding:"omitempty,max=1024"`
	Owner       *string    `json:"owner"`
	Board       *string    `json:"board"`
	Status      *string    `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Label       *string    `json:"label"`
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("invalid request body", err.Error()))
		return
	}
	t, err := h.svc.Update(c.Request.Context(), c.Param("id"), service.TaskUpdate{
		Name:        req.Name,
		Description: req.Description,
		Owner:       req.Owner,
		Board:       req.Board,
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Label:       req.Label,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	t, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
