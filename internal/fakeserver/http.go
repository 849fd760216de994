package fakeserver

import (
	"net/http"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	"github.com/gin-gonic/gin"
)

const headerCallerID = "MODELSERVER-CALLER-ID"

type modelRequest struct {
	ModelName string `json:"model_name" binding:"required"`
}

type predictRequest struct {
	ModelName string `json:"model_name" binding:"required"`
	Input     string `json:"input"`
}

type modelResponse struct {
	Name        string `json:"name"`
	Framework   string `json:"framework"`
	Path        string `json:"path"`
	LastUpdated string `json:"last_updated"`
}

func registerRoutes(router *gin.Engine, s *store) {
	router.GET("/healthcheck", func(c *gin.Context) {
		if e := s.begin(c.Request.Context(), "health_check", c.GetHeader(headerCallerID)); e != nil {
			abort(c, e)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	group := router.Group("/api")
	group.POST("/predict", func(c *gin.Context) {
		if e := s.begin(c.Request.Context(), "predict", c.GetHeader(headerCallerID)); e != nil {
			abort(c, e)
			return
		}
		var req predictRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		output, e := s.predict(req.ModelName, req.Input)
		if e != nil {
			abort(c, e)
			return
		}
		c.JSON(http.StatusOK, gin.H{"output": output})
	})
	group.POST("/models", modelHandler(s, "add_model", s.addModel))
	group.PUT("/models", modelHandler(s, "update_model", s.updateModel))
	group.DELETE("/models", func(c *gin.Context) {
		if e := s.begin(c.Request.Context(), "delete_model", c.GetHeader(headerCallerID)); e != nil {
			abort(c, e)
			return
		}
		name := c.Query("model_name")
		if name == "" {
			c.String(http.StatusBadRequest, "model_name is required")
			return
		}
		if e := s.deleteModel(name); e != nil {
			abort(c, e)
			return
		}
		c.Status(http.StatusNoContent)
	})
	group.GET("/models", func(c *gin.Context) {
		if e := s.begin(c.Request.Context(), "get_models", c.GetHeader(headerCallerID)); e != nil {
			abort(c, e)
			return
		}
		models := s.list()
		resp := make([]modelResponse, 0, len(models))
		for _, m := range models {
			resp = append(resp, modelResponse{
				Name:        m.name,
				Framework:   m.framework.String(),
				Path:        m.path,
				LastUpdated: m.lastUpdated.Format(rfc2822),
			})
		}
		c.JSON(http.StatusOK, gin.H{"total": len(resp), "models": resp})
	})
}

func modelHandler(s *store, op string, apply func(string) *api.Error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if e := s.begin(c.Request.Context(), op, c.GetHeader(headerCallerID)); e != nil {
			abort(c, e)
			return
		}
		var req modelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if e := apply(req.ModelName); e != nil {
			abort(c, e)
			return
		}
		c.Status(http.StatusOK)
	}
}

func abort(c *gin.Context, e *api.Error) {
	code := e.Kind.HTTPStatus()
	if e.Kind == api.KindApplication && e.StatusCode != 0 {
		code = e.StatusCode
	}
	c.String(code, e.Message)
}
