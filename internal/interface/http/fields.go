package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// requestFields carries the request correlation values set by the
// middleware chain into handler error logs.
func requestFields(c *gin.Context) logrus.Fields {
	return logrus.Fields{
		"request_id": c.GetString("request_id"),
		"real_ip":    c.GetString("real_ip"),
	}
}
