package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID 解析路径中的 :id，非法时返回 false
func ParamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// OptionalQueryUint 可选整数查询参数；参数不存在时返回 nil
func OptionalQueryUint(c *gin.Context, key string) (*uint, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, NewFieldError(key, "A valid integer is required.")
	}
	id := uint(v)
	return &id, nil
}

// OptionalQuery 可选字符串查询参数
func OptionalQuery(c *gin.Context, key string) *string {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &raw
}
