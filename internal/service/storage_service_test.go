package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pathfinder_backend/internal/config"

	"github.com/stretchr/testify/require"
)

func localStorage(t *testing.T) (*StorageService, string) {
	t.Helper()
	dir := t.TempDir()
	return &StorageService{
		Provider: &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}},
	}, dir
}

func TestStorageServiceLocal(t *testing.T) {
	ctx := context.Background()

	t.Run("上传后按返回地址删除", func(t *testing.T) {
		svc, dir := localStorage(t)

		content := "avatar-bytes"
		url, err := svc.Upload(ctx, "avatars/1_123.png", strings.NewReader(content), int64(len(content)), "image/png")
		require.NoError(t, err)
		require.Equal(t, "/uploads/avatars/1_123.png", url)

		stored := filepath.Join(dir, "avatars", "1_123.png")
		data, err := os.ReadFile(stored)
		require.NoError(t, err)
		require.Equal(t, content, string(data))

		require.NoError(t, svc.DeleteByURL(ctx, url))
		_, err = os.Stat(stored)
		require.True(t, os.IsNotExist(err))
	})

	t.Run("非本后端地址静默跳过", func(t *testing.T) {
		svc, _ := localStorage(t)
		require.NoError(t, svc.DeleteByURL(ctx, "https://cdn.example.com/avatars/x.png"))
		require.NoError(t, svc.DeleteByURL(ctx, ""))
	})

	t.Run("下载把对象复制到目标路径", func(t *testing.T) {
		svc, _ := localStorage(t)

		content := `{"forest":null}`
		_, err := svc.Upload(ctx, "career_predictor.json", strings.NewReader(content), int64(len(content)), "application/json")
		require.NoError(t, err)

		dst := filepath.Join(t.TempDir(), "ml_model", "career_predictor.json")
		require.NoError(t, svc.Download(ctx, "career_predictor.json", dst))

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		require.Equal(t, content, string(data))
	})
}
