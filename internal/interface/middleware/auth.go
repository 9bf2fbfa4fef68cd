package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasweiblen/clean-architecture/internal/application"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
)

const CtxAccountIDKey = "accountID"

// Auth verifies the x-access-token header, resolves it back to an
// account, and injects the account id into the Gin context.
func Auth(decrypter application.Decrypter, accounts repository.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-access-token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}
		id, err := decrypter.Decrypt(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}
		acc, err := accounts.LoadByID(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if acc == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}
		c.Set(CtxAccountIDKey, acc.ID)
		c.Next()
	}
}
