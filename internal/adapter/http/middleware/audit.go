package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"wallet-api/internal/core/domain"
	"wallet-api/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that records successful write operations.
// Actions are keyed by the matched route template, so /wallets/7 maps as /wallets/:id.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var userID *int64
		if id, ok := UserID(c); ok {
			userID = &id
		}

		resourceID := c.GetString(CtxResourceID)
		if resourceID == "" {
			resourceID = c.Param("id")
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			UserID:       userID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/auth/signup" && method == http.MethodPost:
		return domain.AuditActionSignup, "user"
	case route == "/auth/signin" && method == http.MethodPost:
		return domain.AuditActionSignin, "session"
	case route == "/users" && method == http.MethodPatch:
		return domain.AuditActionEditUser, "user"
	case route == "/wallets" && method == http.MethodPost:
		return domain.AuditActionCreateWallet, "wallet"
	case route == "/wallets/:id" && method == http.MethodPatch:
		return domain.AuditActionEditWallet, "wallet"
	case route == "/wallets/:id" && method == http.MethodDelete:
		return domain.AuditActionDeleteWallet, "wallet"
	}
	return "", ""
}
