package code

import (
	"fmt"
	"net/http"
)

// Code is a response outcome object: numeric code, success flag, HTTP status
// and a translatable message. Handlers attach data or details before sending.
type Code struct {
	code       int
	status     bool
	statusCode int
	// Lang message in all supported languages
	Lang lang
	// 数据
	data     interface{}
	haveData bool
	// 错误详细信息
	details     interface{}
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers a failure code. Duplicate numeric codes panic at init
// so collisions surface immediately.
func NewError(code int, statusCode int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &Code{code: code, status: false, statusCode: statusCode, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code.
func NewSuss(code int, statusCode int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	return &Code{code: code, status: true, statusCode: statusCode, Lang: l}
}

// Clone 创建一个新的 Code 副本
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		status:     e.status,
		statusCode: e.statusCode,
		Lang:       e.Lang,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) StatusCode() int {
	return e.statusCode
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) Details() interface{} {
	return e.details
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

// WithData returns a copy carrying a response payload. The registered code
// objects are shared globals, so mutation happens on the clone only.
func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

// WithDetails returns a copy carrying error details, rendered as the
// "errors" member of the response body.
func (e *Code) WithDetails(details interface{}) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = details
	return c
}
