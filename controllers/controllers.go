package controllers

import (
	"github.com/gin-gonic/gin"

	"tableside/services"
	"tableside/utils"
)

// currentActor rebuilds the caller identity stored by the auth middleware.
func currentActor(c *gin.Context) services.Actor {
	return services.Actor{
		ID:        utils.CurrentUserID(c),
		Role:      utils.CurrentRole(c),
		Superuser: utils.CurrentSuperuser(c),
	}
}
