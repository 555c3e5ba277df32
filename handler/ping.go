package handler

import (
	"net/http"

	"fsxchallenge/utils"

	"github.com/gin-gonic/gin"
)

// @summary     Ping
// @description Check that the service is up.
// @tags        health
// @produce     json
// @success     200 {object} any{message=string}
// @router      /ping [get]
func HandlePing(c *gin.Context) {
	utils.SetHeaderNoCache(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
