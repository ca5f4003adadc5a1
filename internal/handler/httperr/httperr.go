package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error body every endpoint returns. Extra carries
// endpoint-specific fields (e.g. conflict payloads) merged into the body.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Extra   map[string]any
}

func (r Response) Body() gin.H {
	body := gin.H{"error": r.Message}
	for k, v := range r.Extra {
		body[k] = v
	}
	return body
}

// AbortWithError records err on the context for the logging middleware and
// writes the flat error body.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp.Body())
}
