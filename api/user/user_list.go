package user

import (
	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (u *User) UserList(c *gin.Context) {
	var page models.PageInfo
	if err := c.ShouldBindQuery(&page); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	page.Normalize()

	users, total, err := models.UserList(page)
	if err != nil {
		global.Log.Error("models.UserList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取用户列表失败")
		return
	}

	res.SuccessWithPage(c, users, total, page.Page, page.PageSize)
}
