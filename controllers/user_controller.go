package controllers

import (
	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// POST /users creates a staff account (admin provisioning).
func (uc *UserController) Create(c *gin.Context) {
	var req services.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := uc.Users.Create(currentActor(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}
