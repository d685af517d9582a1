package api

import (
	"plants/api/article"
	"plants/api/comment"
	"plants/api/disease"
	"plants/api/plant"
	"plants/api/system"
	"plants/api/user"
)

type AppGroup struct {
	SystemApi  system.System
	UserApi    user.User
	PlantApi   plant.Plant
	DiseaseApi disease.Disease
	ArticleApi article.Article
	CommentApi comment.Comment
}

var AppGroupApp = new(AppGroup)
