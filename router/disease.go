package router

import (
	"plants/api"
	"plants/middleware"
)

func (router RouterGroup) DiseaseRouter() {
	diseaseRouter := router.Group("disease")
	diseaseApi := api.AppGroupApp.DiseaseApi
	diseaseRouter.GET("", diseaseApi.DiseaseList)
	diseaseRouter.GET(":id", diseaseApi.DiseaseDetail)
	diseaseRouter.POST("", middleware.JwtAdmin(), diseaseApi.DiseaseCreate)
	diseaseRouter.PUT(":id", middleware.JwtAdmin(), diseaseApi.DiseaseUpdate)
	diseaseRouter.DELETE(":id", middleware.JwtAdmin(), diseaseApi.DiseaseDelete)
}
