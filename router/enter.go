package router

import (
	"net/http"

	"plants/core"
	"plants/global"
	"plants/utils"

	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.RouterGroup
}

func InitRouter() *gin.Engine {
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery())
	router.Use(utils.Cors())
	// 本地图片直接静态托管
	router.StaticFS("uploads", http.Dir("uploads"))

	apiRouterGroup := router.Group("api")
	routerGroupApp := RouterGroup{apiRouterGroup}
	routerGroupApp.SystemRouter()
	routerGroupApp.UserRouter()
	routerGroupApp.PlantRouter()
	routerGroupApp.DiseaseRouter()
	routerGroupApp.ArticleRouter()
	routerGroupApp.CommentRouter()
	return router
}
