package httpapi_test

import (
	"net/http"
	"testing"

	"demo/orderflow/internal/httpapi"
	"demo/orderflow/internal/model"
	"demo/orderflow/internal/service"
	"demo/orderflow/internal/store"
	"demo/orderflow/internal/store/storemock"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserHandler(t *testing.T) (http.Handler, *storemock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := storemock.NewMockUserRepository(ctrl)
	return httpapi.NewUserRouter(service.NewUsers(repo, zap.NewNop()), zap.NewNop()), repo
}

func TestUsers_CreateAndConflict(t *testing.T) {
	h, repo := newUserHandler(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(model.User{ID: 1, Name: "Ada", Email: "ada@example.com", CreatedAt: createdAt}, nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(model.User{}, store.ErrDuplicate)

	rec, out := do(t, h, http.MethodPost, "/users", `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "ada@example.com", out["email"])

	rec, out = do(t, h, http.MethodPost, "/users", `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, map[string]any{"error": "Conflict", "message": "User with this email already exists."}, out)
}

func TestUsers_GetMissing(t *testing.T) {
	h, repo := newUserHandler(t)
	repo.EXPECT().GetUser(gomock.Any(), int64(5)).Return(model.User{}, false, nil)

	rec, out := do(t, h, http.MethodGet, "/users/5", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found.", out["message"])
}

func TestUsers_UpdateNoFields(t *testing.T) {
	h, repo := newUserHandler(t)
	repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, true, nil)

	rec, out := do(t, h, http.MethodPut, "/users/1", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "No updatable fields provided.", out["message"])
}

func TestUsers_Delete(t *testing.T) {
	h, repo := newUserHandler(t)
	repo.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(true, nil)

	rec, _ := do(t, h, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}
