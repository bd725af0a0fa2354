package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pregen/shop-api/internal/handler/http/mocks"
	"github.com/pregen/shop-api/internal/usecase"
)

func TestAdminRoutes_RoleGates(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		token  string
		status int
	}{
		{"student cannot toggle block", http.MethodPut, "/api/users/admin/toggle-block/u1", nil, studentToken, http.StatusForbidden},
		{"admin toggles block", http.MethodPut, "/api/users/admin/toggle-block/u1", nil, adminToken, http.StatusOK},
		{"admin cannot delete", http.MethodDelete, "/api/users/admin/delete/u1", nil, adminToken, http.StatusForbidden},
		{"super admin deletes", http.MethodDelete, "/api/users/admin/delete/u1", nil, superAdminToken, http.StatusOK},
		{"admin restores", http.MethodPut, "/api/users/admin/restore/u1", nil, adminToken, http.StatusOK},
		{"student cannot restore", http.MethodPut, "/api/users/admin/restore/u1", nil, studentToken, http.StatusForbidden},
		{"admin updates password", http.MethodPut, "/api/users/admin/update-user/u1", map[string]string{"newPassword": "newpass1"}, adminToken, http.StatusOK},
		{"anonymous", http.MethodPut, "/api/users/admin/restore/u1", nil, "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(newMockUsecase(), mocks.NewMockConfig())
			w := serve(r, request{method: tc.method, path: tc.path, body: tc.body, bearer: tc.token})
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}

func TestAdminRoutes_AccessDeniedBody(t *testing.T) {
	r := setupRouter(newMockUsecase(), mocks.NewMockConfig())

	w := serve(r, request{method: http.MethodDelete, path: "/api/users/admin/delete/u1", bearer: adminToken})

	require.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Access denied. Required role(s): SUPER_ADMIN", body["error"])
	assert.Equal(t, []interface{}{"SUPER_ADMIN"}, body["required_roles"])
	assert.Equal(t, "ADMIN", body["your_role"])
}

func TestUpdateUser_PassesActorAndFields(t *testing.T) {
	uc := newMockUsecase()
	r := setupRouter(uc, mocks.NewMockConfig())

	w := serve(r, request{
		method: http.MethodPut,
		path:   "/api/users/admin/update-user/u1",
		bearer: superAdminToken,
		body:   map[string]string{"newRole": "teacher", "newPassword": "newpass1"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "r1", uc.LastActor.ID)
	assert.Equal(t, "teacher", uc.LastNewRole)
	assert.Equal(t, "newpass1", uc.LastNewPassword)
	assert.Equal(t, "User updated successfully", decode(t, w)["message"])
}

func TestUpdateUser_RoleChangeByAdminIsForbidden(t *testing.T) {
	uc := newMockUsecase()
	uc.ShouldFailPrivileged = true
	uc.FailWith = usecase.ErrRoleChangeForbidden
	r := setupRouter(uc, mocks.NewMockConfig())

	w := serve(r, request{method: http.MethodPut, path: "/api/users/admin/update-user/u1", bearer: adminToken, body: map[string]string{"newRole": "ADMIN"}})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Only Super Admin can assign roles", decode(t, w)["error"])
}

func TestDeleteUser(t *testing.T) {
	r := setupRouter(newMockUsecase(), mocks.NewMockConfig())

	w := serve(r, request{method: http.MethodDelete, path: "/api/users/admin/delete/u1", bearer: superAdminToken})

	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, true, user["deleted"])
	assert.NotNil(t, user["deleted_at"])
}

func TestDeleteAndRestore_Conflicts(t *testing.T) {
	uc := newMockUsecase()
	uc.ShouldFailSoftDelete = true
	uc.FailWith = usecase.ErrAlreadyDeleted
	r := setupRouter(uc, mocks.NewMockConfig())
	w := serve(r, request{method: http.MethodDelete, path: "/api/users/admin/delete/u1", bearer: superAdminToken})
	assert.Equal(t, http.StatusConflict, w.Code)

	uc = newMockUsecase()
	uc.ShouldFailRestore = true
	uc.FailWith = usecase.ErrNotDeleted
	r = setupRouter(uc, mocks.NewMockConfig())
	w = serve(r, request{method: http.MethodPut, path: "/api/users/admin/restore/u1", bearer: adminToken})
	assert.Equal(t, http.StatusConflict, w.Code)

	uc = newMockUsecase()
	uc.ShouldFailRestore = true
	uc.FailWith = usecase.ErrUserNotFound
	r = setupRouter(uc, mocks.NewMockConfig())
	w = serve(r, request{method: http.MethodPut, path: "/api/users/admin/restore/missing", bearer: adminToken})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleBlock_ReportsNewState(t *testing.T) {
	r := setupRouter(newMockUsecase(), mocks.NewMockConfig())

	first := decode(t, serve(r, request{method: http.MethodPut, path: "/api/users/admin/toggle-block/u1", bearer: adminToken}))
	second := decode(t, serve(r, request{method: http.MethodPut, path: "/api/users/admin/toggle-block/u1", bearer: adminToken}))

	assert.Equal(t, true, first["blocked"])
	assert.Equal(t, "User blocked", first["message"])
	assert.Equal(t, false, second["blocked"])
}
