package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/repository"
	"tableside/services"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Orders.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?table_number=&status=
func (oc *OrderController) List(c *gin.Context) {
	var filter repository.OrderFilter
	if v := c.Query("table_number"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid table_number")
			return
		}
		filter.TableNumber = &n
	}
	filter.Status = c.Query("status")

	orders, err := oc.Orders.List(filter)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := oc.Orders.Detail(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Orders.Update(currentActor(c), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := oc.Orders.Delete(currentActor(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

type changeStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status
func (oc *OrderController) ChangeStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req changeStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	label, err := oc.Orders.ChangeStatus(currentActor(c), id, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": label})
}
