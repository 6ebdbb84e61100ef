package service

import (
	"testing"

	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestUserServiceNotFound(t *testing.T) {
	t.Run("查询不存在的用户返回专用错误", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery("SELECT(.+)FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		svc := NewUserService(repository.NewUserRepository(db))
		_, err := svc.GetByID(99)
		require.ErrorIs(t, err, util.ErrUserNotFound)
	})

	t.Run("更新不存在的用户同样返回专用错误", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery("SELECT(.+)FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		svc := NewUserService(repository.NewUserRepository(db))
		_, err := svc.UpdateProfile(99, "new name")
		require.ErrorIs(t, err, util.ErrUserNotFound)
	})
}
