package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/johnzhangfit/verttracker/internal/apperrors"
)

// OK writes a 200 with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Msg writes a 200 with a bare message body.
func Msg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"msg": msg})
}

// Error maps an error onto its HTTP status and writes the client-facing
// message. Non-taxonomy errors come out as a masked 500.
func Error(c *gin.Context, err error) {
	c.JSON(apperrors.GetStatus(err), gin.H{"msg": apperrors.GetMessage(err)})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperrors.GetStatus(err), gin.H{"msg": apperrors.GetMessage(err)})
}
