package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type errorCode struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorCode{Code: 500, Message: "internal server error"}
	errorInvalidParameters  = errorCode{Code: 1001, Message: "invalid parameters"}
	errorCannotParseRequest = errorCode{Code: 1002, Message: "can not parse request"}
	errorInvalidDate        = errorCode{Code: 1003, Message: "invalid date"}
	errorInvalidSamples     = errorCode{Code: 1100, Message: "sample validation failed"}
	errorImportRejected     = errorCode{Code: 1101, Message: "import batch rejected"}
)

// abortWithEncoding encodes an error code as the response body and aborts the
// request. Underlying errors are logged, not exposed.
func abortWithEncoding(c *gin.Context, statusCode int, code errorCode, errs ...error) {
	for _, err := range errs {
		log.WithFields(logrus.Fields{
			"prefix": "api",
			"path":   c.Request.URL.Path,
			"error":  err,
		}).Error(code.Message)
		c.Error(err)
	}
	c.AbortWithStatusJSON(statusCode, gin.H{"error": code})
}
