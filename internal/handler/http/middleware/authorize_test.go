package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pregen/shop-api/internal/domain/entity"
)

func gateRouter(role entity.UserRole, gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		if role != "" {
			setIdentity(c, &entity.User{ID: "u1", Role: role}, "tok")
		}
		c.Next()
	}, gate, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func hit(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestRequireRoles_Matrix(t *testing.T) {
	gates := map[string]gin.HandlerFunc{
		"super":   RequireSuperAdmin,
		"admin":   RequireAdmin,
		"teacher": RequireTeacher,
		"student": RequireStudent,
	}
	allowed := map[string][]entity.UserRole{
		"super":   {entity.UserRoleSuperAdmin},
		"admin":   {entity.UserRoleAdmin, entity.UserRoleSuperAdmin},
		"teacher": {entity.UserRoleTeacher, entity.UserRoleAdmin, entity.UserRoleSuperAdmin},
		"student": entity.AllRoles(),
	}

	for name, gate := range gates {
		for _, role := range entity.AllRoles() {
			want := http.StatusForbidden
			if entity.RoleSet(allowed[name]).Contains(role) {
				want = http.StatusNoContent
			}
			w := hit(gateRouter(role, gate))
			assert.Equal(t, want, w.Code, "gate %s role %s", name, role)
		}
	}
}

func TestRequireRoles_NoIdentity(t *testing.T) {
	w := hit(gateRouter("", RequireStudent))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestRequireRoles_EmptySetAdmitsAnyIdentity(t *testing.T) {
	gate := RequireRoles()
	for _, role := range entity.AllRoles() {
		assert.Equal(t, http.StatusNoContent, hit(gateRouter(role, gate)).Code)
	}
	assert.Equal(t, http.StatusForbidden, hit(gateRouter("JANITOR", gate)).Code)
}

func TestRequireRoles_DeniedBody(t *testing.T) {
	w := hit(gateRouter(entity.UserRoleStudent, RequireAdmin))

	require.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Access denied. Required role(s): ADMIN, SUPER_ADMIN", body["error"])
	assert.Equal(t, []interface{}{"ADMIN", "SUPER_ADMIN"}, body["required_roles"])
	assert.Equal(t, "STUDENT", body["your_role"])
}

func TestExtractToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"header", "Bearer abc", "", "abc"},
		{"cookie", "", "def", "def"},
		{"header first", "Bearer abc", "def", "abc"},
		{"not bearer falls back to cookie", "Basic xyz", "def", "def"},
		{"empty bearer", "Bearer  ", "", ""},
		{"none", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tc.cookie})
			}
			c.Request = req

			assert.Equal(t, tc.want, ExtractToken(c))
		})
	}
}
