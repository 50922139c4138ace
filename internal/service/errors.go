package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid   = errors.New("参数错误")
	ErrStoryNotFound  = errors.New("作品不存在")
	ErrUserNotFound   = errors.New("用户不存在")
	UnauthorizedError = errors.New("权限不足")
	UnExpectedError   = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:   BadRequest,
	ErrStoryNotFound:  NotFound,
	ErrUserNotFound:   NotFound,
	UnauthorizedError: Unauthorized,
	UnExpectedError:   InternalServerError,
}
