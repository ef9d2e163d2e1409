package controllers

import (
	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GET /revenue reports the sum of totals over paid orders.
func (rc *ReportController) Revenue(c *gin.Context) {
	total, err := rc.Reports.TotalRevenue()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"totalRevenue": total})
}
