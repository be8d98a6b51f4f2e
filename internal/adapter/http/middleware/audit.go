package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"
	"quizvault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxAuditResourceID lets a handler name the resource an audited call touched.
const CtxAuditResourceID = "audit_resource_id"

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
}

var auditRoutes = map[string]auditRoute{
	"POST /api/auth/register":                  {domain.AuditActionRegister, "user"},
	"POST /api/auth/login":                     {domain.AuditActionLogin, "session"},
	"POST /api/auth/google":                    {domain.AuditActionGoogleLogin, "session"},
	"POST /api/wallet/gold/add":                {domain.AuditActionEarnGold, "wallet"},
	"POST /api/wallet/exchange":                {domain.AuditActionExchange, "wallet"},
	"POST /api/wallet/tests/unlock":            {domain.AuditActionUnlockTest, "test"},
	"POST /api/wallet/google-play/verify":      {domain.AuditActionRedeemPlay, "payment"},
	"POST /api/wallet/razorpay/create-order":   {domain.AuditActionRazorpayOrder, "order"},
	"POST /api/wallet/razorpay/verify-payment": {domain.AuditActionRedeemRazorpay, "payment"},
}

// AuditLog records successful write operations after the handler ran.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		route, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		var userID *uuid.UUID
		if id, ok := UserID(c); ok {
			userID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(response.RequestIDKey),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			UserID:       userID,
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   c.GetString(CtxAuditResourceID),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}
