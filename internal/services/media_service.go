package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"babygrow_backend/internal/imageprocessor"
	"babygrow_backend/internal/logger"
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/internal/storage"
	"babygrow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MediaConfig задает лимиты загрузки медиафайлов
type MediaConfig struct {
	MaxFileSize       int64
	AllowedExtensions []string
	ImageQuality      int
}

// DefaultMediaConfig возвращает лимиты по умолчанию
func DefaultMediaConfig() *MediaConfig {
	return &MediaConfig{
		MaxFileSize: 5 * 1024 * 1024,
		AllowedExtensions: []string{
			".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp",
			".mp4", ".mov", ".avi",
		},
		ImageQuality: 80,
	}
}

var videoExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
}

type MediaService interface {
	// Attach принимает пачку файлов для ребенка. Непригодные файлы
	// пропускаются, а не валят всю загрузку.
	Attach(ctx context.Context, db *gorm.DB, userID, babyID string, files []*multipart.FileHeader) (*dto.AttachMediaResult, error)
	List(ctx context.Context, db *gorm.DB, userID, babyID string, limit, offset int) ([]dto.PhotoResponse, int64, error)
	Delete(ctx context.Context, db *gorm.DB, userID, babyID, photoID string) error
}

type MediaServiceImpl struct {
	photoRepo repositories.PhotoRepository
	babyRepo  repositories.BabyRepository
	storage   storage.Storage
	processor *imageprocessor.Processor
	config    *MediaConfig
}

func NewMediaService(
	photoRepo repositories.PhotoRepository,
	babyRepo repositories.BabyRepository,
	store storage.Storage,
	config *MediaConfig,
) MediaService {
	if config == nil {
		config = DefaultMediaConfig()
	}
	return &MediaServiceImpl{
		photoRepo: photoRepo,
		babyRepo:  babyRepo,
		storage:   store,
		processor: imageprocessor.NewProcessor(config.ImageQuality),
		config:    config,
	}
}

// Attach сохраняет файлы, создает записи и миниатюры.
// Возвращает количество принятых файлов и статус каждого.
func (s *MediaServiceImpl) Attach(ctx context.Context, db *gorm.DB, userID, babyID string, files []*multipart.FileHeader) (*dto.AttachMediaResult, error) {
	if err := s.requireParentLink(db, babyID, userID); err != nil {
		return nil, err
	}

	result := &dto.AttachMediaResult{
		Items: make([]dto.MediaItemResult, 0, len(files)),
	}

	for _, fh := range files {
		item := s.attachOne(ctx, db, userID, babyID, fh)
		if item.Accepted {
			result.AcceptedCount++
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}

// attachOne обрабатывает один файл. Любой отказ - skip, не ошибка.
func (s *MediaServiceImpl) attachOne(ctx context.Context, db *gorm.DB, userID, babyID string, fh *multipart.FileHeader) dto.MediaItemResult {
	item := dto.MediaItemResult{OriginalName: fh.Filename}

	if fh.Size > s.config.MaxFileSize {
		item.Reason = fmt.Sprintf("file exceeds %d bytes", s.config.MaxFileSize)
		logger.Warn("Skipping oversized media file",
			"filename", fh.Filename, "size", fh.Size, "baby_id", babyID)
		return item
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !s.extensionAllowed(ext) {
		item.Reason = fmt.Sprintf("extension %q is not allowed", ext)
		logger.Warn("Skipping media file with disallowed extension",
			"filename", fh.Filename, "baby_id", babyID)
		return item
	}

	src, err := fh.Open()
	if err != nil {
		item.Reason = "cannot read uploaded file"
		logger.WithError(err).Warn("Failed to open uploaded file", "filename", fh.Filename)
		return item
	}
	defer src.Close()

	// Содержимое читается один раз: оно нужно и для сохранения,
	// и для генерации миниатюры
	content, err := io.ReadAll(io.LimitReader(src, s.config.MaxFileSize+1))
	if err != nil {
		item.Reason = "cannot read uploaded file"
		logger.WithError(err).Warn("Failed to read uploaded file", "filename", fh.Filename)
		return item
	}
	if int64(len(content)) > s.config.MaxFileSize {
		item.Reason = fmt.Sprintf("file exceeds %d bytes", s.config.MaxFileSize)
		return item
	}

	mediaType := models.MediaPhoto
	if videoExtensions[ext] {
		mediaType = models.MediaVideo
	}

	path := s.buildPath(babyID, ext)
	if err := s.storage.Save(ctx, path, bytes.NewReader(content), fh.Header.Get("Content-Type")); err != nil {
		item.Reason = "storage failure"
		logger.WithError(err).Error("Failed to save media file", "filename", fh.Filename, "path", path)
		return item
	}

	photo := &models.Photo{
		BabyID:       babyID,
		Path:         path,
		MediaType:    mediaType,
		UploadedByID: userID,
		OriginalName: fh.Filename,
		Size:         int64(len(content)),
	}

	if err := s.photoRepo.Create(db, photo); err != nil {
		// Файл уже лежит в хранилище, запись не создалась - подчищаем
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			logger.WithError(delErr).Warn("Failed to remove orphaned media file", "path", path)
		}
		item.Reason = "database failure"
		logger.WithError(err).Error("Failed to create media record", "filename", fh.Filename)
		return item
	}

	if mediaType == models.MediaPhoto {
		s.generateThumbnail(ctx, db, photo, content)
	}

	item.Accepted = true
	item.PhotoID = photo.ID
	return item
}

// generateThumbnail строит миниатюру. Провал не отменяет загрузку,
// запись остается без миниатюры.
func (s *MediaServiceImpl) generateThumbnail(ctx context.Context, db *gorm.DB, photo *models.Photo, content []byte) {
	thumb, err := s.processor.Thumbnail(bytes.NewReader(content))
	if err != nil {
		logger.WithError(err).Warn("Failed to generate thumbnail", "photo_id", photo.ID)
		return
	}

	thumbPath := thumbnailPath(photo.Path)
	if err := s.storage.Save(ctx, thumbPath, thumb, "image/jpeg"); err != nil {
		logger.WithError(err).Warn("Failed to save thumbnail", "photo_id", photo.ID)
		return
	}

	if err := s.photoRepo.SetThumbnail(db, photo.ID, thumbPath); err != nil {
		logger.WithError(err).Warn("Failed to record thumbnail path", "photo_id", photo.ID)
		return
	}

	photo.Thumbnail = thumbPath
}

func (s *MediaServiceImpl) List(ctx context.Context, db *gorm.DB, userID, babyID string, limit, offset int) ([]dto.PhotoResponse, int64, error) {
	if err := s.requireParentLink(db, babyID, userID); err != nil {
		return nil, 0, err
	}

	photos, total, err := s.photoRepo.ListForBaby(db, babyID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	result := make([]dto.PhotoResponse, 0, len(photos))
	for i := range photos {
		result = append(result, s.toResponse(ctx, &photos[i]))
	}
	return result, total, nil
}

func (s *MediaServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, babyID, photoID string) error {
	if err := s.requireParentLink(db, babyID, userID); err != nil {
		return err
	}

	photo, err := s.photoRepo.FindByID(db, photoID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPhotoNotFound) {
			return apperrors.NotFound("Photo")
		}
		return apperrors.InternalError(err)
	}
	if photo.BabyID != babyID {
		return apperrors.NotFound("Photo")
	}

	if err := s.photoRepo.Delete(db, photoID, babyID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.storage.Delete(ctx, photo.Path); err != nil {
		logger.WithError(err).Warn("Failed to delete media file", "path", photo.Path)
	}
	if photo.Thumbnail != "" {
		if err := s.storage.Delete(ctx, photo.Thumbnail); err != nil {
			logger.WithError(err).Warn("Failed to delete thumbnail", "path", photo.Thumbnail)
		}
	}

	return nil
}

func (s *MediaServiceImpl) requireParentLink(db *gorm.DB, babyID, userID string) error {
	if _, err := s.babyRepo.FindByID(db, babyID); err != nil {
		if apperrors.Is(err, repositories.ErrBabyNotFound) {
			return apperrors.ErrBabyNotFound
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.babyRepo.FindParentLink(db, babyID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrParentLinkNotFound) {
			return apperrors.NewForbiddenError("Not a parent of this baby")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MediaServiceImpl) extensionAllowed(ext string) bool {
	for _, allowed := range s.config.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (s *MediaServiceImpl) buildPath(babyID, ext string) string {
	return fmt.Sprintf("babies/%s/%s/%s%s",
		babyID, time.Now().Format("2006/01"), randomFileName(), ext)
}

// thumbnailPath строит путь миниатюры рядом с оригиналом
func thumbnailPath(originalPath string) string {
	ext := filepath.Ext(originalPath)
	return strings.TrimSuffix(originalPath, ext) + "_thumb.jpg"
}

func randomFileName() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

func (s *MediaServiceImpl) toResponse(ctx context.Context, photo *models.Photo) dto.PhotoResponse {
	url, _ := s.storage.GetURL(ctx, photo.Path)

	resp := dto.PhotoResponse{
		ID:           photo.ID,
		BabyID:       photo.BabyID,
		URL:          url,
		MediaType:    string(photo.MediaType),
		OriginalName: photo.OriginalName,
		Size:         photo.Size,
		CreatedAt:    photo.CreatedAt,
	}
	if photo.Thumbnail != "" {
		resp.ThumbnailURL, _ = s.storage.GetURL(ctx, photo.Thumbnail)
	}
	return resp
}
