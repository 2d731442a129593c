package gin

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fwojciec/faleproxy"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func (s *Server) registerRoutes() {
	s.router.POST("/fetch", s.handleFetch)
	s.router.GET("/health", s.handleHealth)
}

// handleFetch proxies and rewrites the URL in the request body. JSON and
// form bodies are accepted; an unreadable body counts as a missing URL.
func (s *Server) handleFetch(c *gin.Context) {
	req := bindFetchRequest(c)

	resp, err := s.ProxyService.Fetch(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		c.PureJSON(faleproxy.ErrorStatus(err), faleproxy.ErrorResponse{
			Error: faleproxy.ErrorMessage(err),
		})
		return
	}

	c.PureJSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindFetchRequest(c *gin.Context) faleproxy.FetchRequest {
	if c.ContentType() == binding.MIMEJSON {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			return faleproxy.FetchRequest{}
		}
		return faleproxy.FetchRequest{URL: urlField(body["url"])}
	}

	var req faleproxy.FetchRequest
	if err := c.ShouldBind(&req); err != nil {
		return faleproxy.FetchRequest{}
	}
	return req
}

// urlField converts a decoded JSON "url" value to the string handed to the
// proxy. Null, false, zero and "" count as absent. Any other non-string
// value is stringified so that it fails validation as an invalid URL.
func urlField(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return ""
		}
	}
	return fmt.Sprint(v)
}
