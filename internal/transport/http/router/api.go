package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"taskboard-api/internal/core/auth"
	"taskboard-api/internal/transport/http/handler"
	mdw "taskboard-api/internal/transport/http/middleware"
)

type Handlers struct {
	Users         *handler.UserHandler
	Boards        *handler.BoardHandler
	Tasks         *handler.TaskHandler
	Labels        *handler.LabelHandler
	Comments      *handler.CommentHandler
	Collaborators *handler.CollaboratorHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 注册/登录是唯一的公开入口
	api.POST("/users", h.Users.Register)
	api.POST("/users/login", h.Users.Login)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	users := authed.Group("/users")
	{
		users.GET("/:id", h.Users.GetByID)
		users.GET("", h.Users.GetAll)
		users.PUT("/:id", h.Users.Update)
		users.DELETE("/:id", h.Users.Delete)
	}

	mountCRUD(authed.Group("/boards"), crud{
		create: h.Boards.Create, getByID: h.Boards.GetByID, getAll: h.Boards.GetAll,
		update: h.Boards.Update, delete: h.Boards.Delete,
	})
	mountCRUD(authed.Group("/tasks"), crud{
		create: h.Tasks.Create, getByID: h.Tasks.GetByID, getAll: h.Tasks.GetAll,
		update: h.Tasks.Update, delete: h.Tasks.Delete,
	})
	mountCRUD(authed.Group("/labels"), crud{
		create: h.Labels.Create, getByID: h.Labels.GetByID, getAll: h.Labels.GetAll,
		update: h.Labels.Update, delete: h.Labels.Delete,
	})
	mountCRUD(authed.Group("/comments"), crud{
		create: h.Comments.Create, getByID: h.Comments.GetByID, getAll: h.Comments.GetAll,
		update: h.Comments.Update, delete: h.Comments.Delete,
	})
	mountCRUD(authed.Group("/collaborators"), crud{
		create: h.Collaborators.Create, getByID: h.Collaborators.GetByID, getAll: h.Collaborators.GetAll,
		update: h.Collaborators.Update, delete: h.Collaborators.Delete,
	})

	return r
}

type crud struct {
	create  gin.HandlerFunc
	getByID gin.HandlerFunc
	getAll  gin.HandlerFunc
	update  gin.HandlerFunc
	delete  gin.HandlerFunc
}

// 六个资源切片的路由形状完全一致
func mountCRUD(g *gin.RouterGroup, h crud) {
	g.POST("", h.create)
	g.GET("/:id", h.getByID)
	g.GET("", h.getAll)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}
