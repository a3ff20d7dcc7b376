package common

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Package common provides small, shared helpers used across handlers.
// KISS: tiny functions, no shared mutable state.

const (
	MsgNotFound       = "Reservation not found"
	MsgInvalidRequest = "Invalid request body"
	MsgDeleted        = "Reservation deleted successfully"
)

// Message writes a {"message": msg} body with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// NotFound writes the standard 404 body for an unknown reservation.
func NotFound(c *gin.Context) {
	Message(c, http.StatusNotFound, MsgNotFound)
}

// BindJSON decodes the request body into v. An empty body counts as {} and
// leaves v untouched. On failure it answers 400, unless a middleware (the
// body size limiter) already aborted the request.
func BindJSON(c *gin.Context, v any) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	if err := c.ShouldBindJSON(v); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		_ = c.Error(err)
		if !c.IsAborted() {
			Message(c, http.StatusBadRequest, MsgInvalidRequest)
		}
		return false
	}
	return true
}

// IntParam parses the named path parameter with ParseLeadingInt.
func IntParam(c *gin.Context, name string) (int, bool) {
	return ParseLeadingInt(c.Param(name))
}

// ParseLeadingInt reads an optionally signed base-10 integer from the start
// of s, after leading whitespace, and ignores whatever follows the digits:
// "2abc" is 2, "7.9" is 7. It fails when no digit is found or on overflow.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
