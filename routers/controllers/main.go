package controllers

import (
	"encoding/json"

	"github.com/lensvault/lensvault/pkg/serializer"

	"github.com/go-playground/validator/v10"
)

// ParamErrorMsg 根据Validator返回的错误信息给出错误提示
func ParamErrorMsg(filed string, tag string) string {
	// 未定义的错误
	fieldMap := map[string]string{
		"UserID":    "User",
		"ProjectID": "Project",
		"Name":      "Name",
		"Key":       "Metadata key",
		"Files":     "File list",
	}
	tagMap := map[string]string{
		"required": "cannot be empty",
		"min":      "is too short",
		"max":      "is too long",
		"gte":      "is out of range",
		"lte":      "is out of range",
	}
	fieldVal, findField := fieldMap[filed]
	tagVal, findTag := tagMap[tag]
	if findField && findTag {
		// 返回拼接出来的错误信息
		return fieldVal + " " + tagVal
	}
	return ""
}

// ErrorResponse 返回错误消息
func ErrorResponse(err error) serializer.Response {
	// 处理 Validator 产生的错误
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, e := range ve {
			return serializer.ParamErr(
				ParamErrorMsg(e.Field(), e.Tag()),
				err,
			)
		}
	}

	if _, ok := err.(*json.UnmarshalTypeError); ok {
		return serializer.ParamErr("JSON marshall error", err)
	}

	return serializer.ParamErr("Invalid parameters", err)
}
