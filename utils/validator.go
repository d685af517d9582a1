package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func Validate(i interface{}) error {
	return validate.Struct(i)
}

func FormatValidationError(errs validator.ValidationErrors) string {
	// 错误信息映射
	msgMap := map[string]string{
		"required": "不能为空",
		"min":      "长度不能小于%v",
		"max":      "长度不能大于%v",
		"email":    "必须是有效的邮箱地址",
		"oneof":    "必须是[%v]中的一个",
		"gt":       "必须大于%v",
		"gte":      "必须大于等于%v",
		"lt":       "必须小于%v",
		"lte":      "必须小于等于%v",
		"dive":     "验证失败",
	}

	// 字段名称映射
	fieldMap := map[string]string{
		"Name":        "名称",
		"Content":     "内容",
		"Description": "描述",
		"Usage":       "用法",
		"Precautions": "注意事项",
		"Title":       "标题",
		"Password":    "密码",
		"Account":     "账号",
		"Nickname":    "昵称",
	}

	// 只返回第一个错误
	firstErr := errs[0]

	fieldName := fieldMap[firstErr.Field()]
	if fieldName == "" {
		fieldName = firstErr.Field()
	}

	msgTemplate := msgMap[firstErr.Tag()]
	if msgTemplate == "" {
		msgTemplate = "验证失败"
	}

	if firstErr.Param() != "" {
		return fieldName + fmt.Sprintf(msgTemplate, firstErr.Param())
	}

	return fieldName + msgTemplate
}
