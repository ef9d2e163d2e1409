package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

type DishController struct {
	Dishes *services.DishService
}

func NewDishController(dishes *services.DishService) *DishController {
	return &DishController{Dishes: dishes}
}

// GET /dishes
func (dc *DishController) List(c *gin.Context) {
	dishes, err := dc.Dishes.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// POST /dishes
func (dc *DishController) Create(c *gin.Context) {
	var req services.DishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := dc.Dishes.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, dish)
}

// PATCH /dishes/:id
func (dc *DishController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	var req services.DishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := dc.Dishes.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dish)
}

// DELETE /dishes/:id
func (dc *DishController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	if err := dc.Dishes.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /dishes/import takes a multipart upload of an Excel price list.
func (dc *DishController) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "Excel file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer file.Close()

	count, err := dc.Dishes.ImportExcel(file)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"count": count})
}
