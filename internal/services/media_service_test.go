package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"testing"

	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/storage"
	"babygrow_backend/pkg/apperrors"
	"babygrow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadFile struct {
	name    string
	content []byte
}

// makeFileHeaders собирает настоящую multipart форму и разбирает ее
// обратно, чтобы получить *multipart.FileHeader как из gin
func makeFileHeaders(t *testing.T, files []uploadFile) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["files"]
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newMediaEnv(t *testing.T, cfg *services.MediaConfig) (services.MediaService, storage.Storage) {
	t.Helper()

	store, err := storage.NewLocalStorage(storage.Config{
		Type:     "local",
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:4000/media",
	})
	require.NoError(t, err)

	svc := services.NewMediaService(
		repositories.NewPhotoRepository(),
		repositories.NewBabyRepository(),
		store,
		cfg,
	)
	return svc, store
}

func TestAttachSkipsOversizedFile(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	cfg := services.DefaultMediaConfig()
	cfg.MaxFileSize = 2048
	svc, _ := newMediaEnv(t, cfg)

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, user.ID)

	files := makeFileHeaders(t, []uploadFile{
		{name: "small.png", content: pngBytes(t, 8, 8)},
		{name: "huge.jpg", content: bytes.Repeat([]byte{0xff}, 4096)},
		{name: "clip.mp4", content: []byte("not really a video")},
	})

	result, err := svc.Attach(context.Background(), db, user.ID, baby.ID, files)
	require.NoError(t, err)
	assert.Equal(t, 2, result.AcceptedCount)
	require.Len(t, result.Items, 3)

	assert.True(t, result.Items[0].Accepted)
	assert.False(t, result.Items[1].Accepted)
	assert.Contains(t, result.Items[1].Reason, "exceeds")
	assert.True(t, result.Items[2].Accepted)

	// Пропущенный файл не оставляет строки в базе
	var count int64
	require.NoError(t, db.Model(&models.Photo{}).Where("baby_id = ?", baby.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAttachSkipsDisallowedExtension(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc, _ := newMediaEnv(t, nil)

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, user.ID)

	files := makeFileHeaders(t, []uploadFile{
		{name: "notes.txt", content: []byte("plain text")},
		{name: "script.sh", content: []byte("#!/bin/sh")},
	})

	result, err := svc.Attach(context.Background(), db, user.ID, baby.ID, files)
	require.NoError(t, err)
	assert.Equal(t, 0, result.AcceptedCount)
	for _, item := range result.Items {
		assert.False(t, item.Accepted)
		assert.Contains(t, item.Reason, "not allowed")
	}
}

func TestAttachThumbnails(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc, store := newMediaEnv(t, nil)
	photoRepo := repositories.NewPhotoRepository()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, user.ID)

	files := makeFileHeaders(t, []uploadFile{
		{name: "garden.png", content: pngBytes(t, 640, 480)},
		{name: "walk.mp4", content: []byte("fake video payload")},
	})

	result, err := svc.Attach(context.Background(), db, user.ID, baby.ID, files)
	require.NoError(t, err)
	require.Equal(t, 2, result.AcceptedCount)

	photo, err := photoRepo.FindByID(db, result.Items[0].PhotoID)
	require.NoError(t, err)
	assert.Equal(t, models.MediaPhoto, photo.MediaType)
	assert.NotEmpty(t, photo.Thumbnail)

	exists, err := store.Exists(context.Background(), photo.Thumbnail)
	require.NoError(t, err)
	assert.True(t, exists)

	video, err := photoRepo.FindByID(db, result.Items[1].PhotoID)
	require.NoError(t, err)
	assert.Equal(t, models.MediaVideo, video.MediaType)
	assert.Empty(t, video.Thumbnail)
}

func TestAttachRequiresParentLink(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc, _ := newMediaEnv(t, nil)

	parent := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	stranger := helpers.CreateUser(t, db, "bob", "b@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, parent.ID)

	files := makeFileHeaders(t, []uploadFile{
		{name: "pic.png", content: pngBytes(t, 8, 8)},
	})

	_, err := svc.Attach(context.Background(), db, stranger.ID, baby.ID, files)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)

	_, err = svc.Attach(context.Background(), db, parent.ID, "00000000-0000-0000-0000-000000000000", files)
	assert.ErrorIs(t, err, apperrors.ErrBabyNotFound)
}

func TestDeleteMedia(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc, store := newMediaEnv(t, nil)
	photoRepo := repositories.NewPhotoRepository()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, user.ID)
	otherBaby := helpers.CreateBaby(t, db, user.ID)

	files := makeFileHeaders(t, []uploadFile{
		{name: "pic.png", content: pngBytes(t, 64, 64)},
	})
	result, err := svc.Attach(context.Background(), db, user.ID, baby.ID, files)
	require.NoError(t, err)
	require.Equal(t, 1, result.AcceptedCount)
	photoID := result.Items[0].PhotoID

	photo, err := photoRepo.FindByID(db, photoID)
	require.NoError(t, err)

	// Идентификатор другого ребенка в пути - фото "не найдено"
	err = svc.Delete(context.Background(), db, user.ID, otherBaby.ID, photoID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	require.NoError(t, svc.Delete(context.Background(), db, user.ID, baby.ID, photoID))

	_, err = photoRepo.FindByID(db, photoID)
	assert.ErrorIs(t, err, repositories.ErrPhotoNotFound)

	exists, err := store.Exists(context.Background(), photo.Path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListMedia(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc, _ := newMediaEnv(t, nil)

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, user.ID)

	files := makeFileHeaders(t, []uploadFile{
		{name: "one.png", content: pngBytes(t, 8, 8)},
		{name: "two.png", content: pngBytes(t, 8, 8)},
		{name: "three.png", content: pngBytes(t, 8, 8)},
	})
	_, err := svc.Attach(context.Background(), db, user.ID, baby.ID, files)
	require.NoError(t, err)

	photos, total, err := svc.List(context.Background(), db, user.ID, baby.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, photos, 2)
}
