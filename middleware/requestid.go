package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestIDHeader is the header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

const loggerKey = "logger"

// RequestIDMiddleware tags each request with an ID and a logger carrying it.
//
// A valid UUID sent by the client is kept, otherwise a new one is generated.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(RequestIDHeader))
		if err != nil {
			id = uuid.New()
		}
		c.Header(RequestIDHeader, id.String())
		c.Set(loggerKey, log.WithField("request_id", id.String()))
		c.Next()
	}
}

// Logger returns the request logger, or the standard logger outside of RequestIDMiddleware.
func Logger(c *gin.Context) *log.Entry {
	if entry, ok := c.Get(loggerKey); ok {
		if entry, ok := entry.(*log.Entry); ok {
			return entry
		}
	}
	return log.NewEntry(log.StandardLogger())
}
