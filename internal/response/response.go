package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape of every response: the HTTP status code is
// mirrored inside the body next to the payload and a human message.
type Envelope struct {
	Data    any `json:"data"`
	Message any `json:"message"`
	Status  int `json:"status"`
}

// UnauthorizedMessage is the fixed text returned on every role denial.
const UnauthorizedMessage = "You don't have the permission to access this endpoint."

// JSON writes the envelope with the given status, payload and message.
func JSON(c *gin.Context, status int, data any, message any) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, Envelope{Data: data, Message: message, Status: status})
}

// OK answers 200 with a payload.
func OK(c *gin.Context, data any, message string) {
	JSON(c, 200, data, message)
}

// Created answers 201 with just a message.
func Created(c *gin.Context, message string) {
	JSON(c, 201, nil, message)
}

// Error answers an error status with a message. Unexpected failures are
// reported as 400 with the raw error text; infrastructure faults
// deliberately do not map to 500 (see DESIGN.md).
func Error(c *gin.Context, status int, message any) {
	JSON(c, status, nil, message)
}

// Unauthorized answers a role denial with the fixed message.
func Unauthorized(c *gin.Context) {
	JSON(c, 401, nil, UnauthorizedMessage)
}
