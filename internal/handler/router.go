package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records/internal/middleware"
	"github.com/noah-isme/student-records/internal/service"
	"github.com/noah-isme/student-records/pkg/logger"
	reqidmiddleware "github.com/noah-isme/student-records/pkg/middleware/requestid"
)

const metricsPath = "/metrics"

// NewRouter assembles the middleware chain, the embedded templates and every
// route. metrics may be nil, in which case /metrics is not mounted.
func NewRouter(logr *zap.Logger, metrics *service.MetricsService, students *StudentHandler, ops *MetricsHandler) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics, metricsPath))

	if err := LoadTemplates(r); err != nil {
		return nil, err
	}

	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	if metrics != nil {
		r.GET(metricsPath, ops.Prometheus)
	}

	r.GET("/", students.Index)
	group := r.Group("/students")
	group.GET("", students.View)
	group.GET("/add", students.AddForm)
	group.POST("/add", students.Add)
	group.GET("/update", students.UpdateForm)
	group.POST("/update", students.Update)
	group.GET("/delete", students.DeleteForm)
	group.POST("/delete", students.Delete)
	group.GET("/export.csv", students.ExportCSV)
	group.GET("/export.pdf", students.ExportPDF)

	return r, nil
}
