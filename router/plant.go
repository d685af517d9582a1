package router

import (
	"plants/api"
	"plants/middleware"
)

func (router RouterGroup) PlantRouter() {
	plantRouter := router.Group("plant")
	plantApi := api.AppGroupApp.PlantApi
	plantRouter.GET("", plantApi.PlantList)
	plantRouter.GET("all", plantApi.PlantListAll)
	plantRouter.GET("search", plantApi.PlantSearch)
	plantRouter.GET("search/all", plantApi.PlantSearchAll)
	plantRouter.GET("byDisease", plantApi.PlantsByDiseaseName)
	plantRouter.GET("disease/:id", plantApi.PlantsByDiseaseID)
	plantRouter.GET(":id", plantApi.PlantDetail)
	plantRouter.POST("", middleware.JwtAdmin(), plantApi.PlantCreate)
	plantRouter.PUT(":id", middleware.JwtAdmin(), plantApi.PlantUpdate)
	plantRouter.DELETE(":id", middleware.JwtAdmin(), plantApi.PlantDelete)
}
