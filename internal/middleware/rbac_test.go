package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/lms-api/internal/models"
	appErrors "github.com/noah-isme/lms-api/pkg/errors"
)

type stubTokens map[string]*models.JWTClaims

func (s stubTokens) ValidateToken(token string) (*models.JWTClaims, error) {
	claims, ok := s[token]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return claims, nil
}

func newGuardedRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := stubTokens{
		"admin":   {UserID: "u0000009", Role: models.RoleAdministrator},
		"student": {UserID: "u0000002", Role: models.RoleStudent},
	}
	r := gin.New()
	r.GET("/students/:uid", JWT(tokens), guard, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func serve(r *gin.Engine, path, auth string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestJWTRejectsMissingOrMalformedHeader(t *testing.T) {
	r := newGuardedRouter(RBAC(string(models.RoleStudent)))

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/students/u0000002", ""))
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/students/u0000002", "Token student"))
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/students/u0000002", "Bearer forged"))
	assert.Equal(t, http.StatusNoContent, serve(r, "/students/u0000002", "bearer student"))
}

func TestRBACRolesAndSelf(t *testing.T) {
	r := newGuardedRouter(RBAC(string(models.RoleAdministrator), Self))

	assert.Equal(t, http.StatusNoContent, serve(r, "/students/u0000003", "Bearer admin"))
	assert.Equal(t, http.StatusNoContent, serve(r, "/students/u0000002", "Bearer student"))
	assert.Equal(t, http.StatusForbidden, serve(r, "/students/u0000003", "Bearer student"))
}

func TestRequireRolesWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", RequireRoles(models.RoleProfessor), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/open", ""))
}
