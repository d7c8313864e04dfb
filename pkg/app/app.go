// Package app carries the HTTP response envelope, request binding with
// validation, and token verification helpers used by the API handlers.
package app

import (
	"net"

	"github.com/haierkeys/second-brain-service/pkg/code"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Ctx *gin.Context
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{Ctx: ctx}
}

// ToResponse writes c as the HTTP response. Codes carrying data render the
// payload directly; codes carrying details render {"errors": [...]}; plain
// codes render {"msg": "..."}.
func (r *Response) ToResponse(c *code.Code) {
	if c.HaveDetails() {
		r.Ctx.JSON(c.StatusCode(), gin.H{"errors": c.Details()})
		return
	}
	if c.HaveData() {
		r.Ctx.JSON(c.StatusCode(), c.Data())
		return
	}
	r.Ctx.JSON(c.StatusCode(), gin.H{"msg": c.Msg()})
}

// GetRequestIP returns the client IP, preferring proxy headers.
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// GetAccessHost returns the scheme://host root the request arrived on,
// with default ports stripped.
func GetAccessHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	host := c.Request.Host
	if h, p, err := net.SplitHostPort(host); err == nil {
		if (scheme == "http" && p == "80") || (scheme == "https" && p == "443") {
			host = h
		}
	}
	return scheme + "://" + host
}
