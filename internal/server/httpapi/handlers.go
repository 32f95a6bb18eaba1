package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type auditRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type auditResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type pageQuery struct {
	Skip  *int `form:"skip"`
	Limit *int `form:"limit"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *HTTPServer) createUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	user, err := s.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// login takes an application/x-www-form-urlencoded username and password.
func (s *HTTPServer) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	tokens, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: tokens.AccessToken, TokenType: tokens.TokenType})
}

func (s *HTTPServer) createAudit(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		s.respondError(c, common.ErrUnauthenticated)
		return
	}

	var req auditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	audit, err := s.audits.Create(c.Request.Context(), req.Name, req.Status, token)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuditResponse(audit))
}

func (s *HTTPServer) listAudits(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	skip, limit := 0, services.DefaultListLimit
	if q.Skip != nil {
		skip = *q.Skip
	}
	if q.Limit != nil {
		limit = *q.Limit
	}

	list, err := s.audits.List(c.Request.Context(), skip, limit)
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := make([]auditResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toAuditResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// respondError maps service errors to status codes. Unexpected errors are
// logged and answered with a bare 500.
func (s *HTTPServer) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
	case errors.Is(err, common.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: common.ErrDuplicateUsername.Error()})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: common.ErrInvalidCredentials.Error()})
	case errors.Is(err, common.ErrUnauthenticated):
		c.Header("WWW-Authenticate", common.BearerScheme)
		c.JSON(http.StatusUnauthorized, errorResponse{Detail: common.ErrUnauthenticated.Error()})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err, "request_id", c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.UserName}
}

func toAuditResponse(a *models.Audit) auditResponse {
	return auditResponse{ID: a.ID, Name: a.Name, Status: a.Status, CreatedAt: a.CreatedAt}
}
