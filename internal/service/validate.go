package service

import (
	"errors"
	"strings"

	"teksher_backend/internal/util"

	"gorm.io/gorm"
)

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
	msgNull     = "This field may not be null."
)

// checker 校验必填字段；partial 为 true 时（PATCH）缺省字段不报错
type checker struct {
	partial bool
	errs    util.FieldErrors
}

func newChecker(partial bool) *checker {
	return &checker{partial: partial, errs: util.FieldErrors{}}
}

func (c *checker) present(field string, ok bool) bool {
	if !ok && !c.partial {
		c.errs.Add(field, msgRequired)
	}
	return ok
}

// text 不允许空白字符串
func (c *checker) text(field string, v *string) {
	if c.present(field, v != nil) && strings.TrimSpace(*v) == "" {
		c.errs.Add(field, msgBlank)
	}
}

func (c *checker) add(errs util.FieldErrors) {
	c.errs.Merge(errs)
}

func (c *checker) err() error {
	return c.errs.OrNil()
}

// notFound 统一记录不存在的错误
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return err
}
