package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaStorage defines the contract for the external media host. The platform
// only passes files through; transcoding and delivery are the host's problem.
type MediaStorage interface {
	// UploadImage uploads an image from r and returns the secure URL.
	// folder is a logical folder in storage (e.g. "profile-pictures").
	UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// UploadVideo uploads a video from r and returns the secure URL together
	// with the host-reported duration in seconds (0 when unknown).
	UploadVideo(ctx context.Context, r io.Reader, folder, fileName string) (string, float64, error)
	// Delete removes a previously uploaded file using its URL.
	Delete(ctx context.Context, fileURL string) error
}

type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates the Cloudinary-backed implementation of
// MediaStorage from explicit credentials. When they are absent it falls back
// to the SDK's CLOUDINARY_URL handling.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (MediaStorage, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	} else {
		cld, err = cloudinary.New()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	// Ensure HTTPS URLs by default.
	cld.Config.URL.Secure = true

	return &cloudinaryStorage{cld: cld}, nil
}

func (s *cloudinaryStorage) UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	if s == nil || s.cld == nil {
		return "", fmt.Errorf("cloudinary storage is not initialized")
	}

	params := uploader.UploadParams{
		Folder:         folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		PublicID:       publicIDFor(fileName),
		Overwrite:      api.Bool(false),
	}

	// Compress recognised image formats on the way in.
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".gif", ".webp":
		params.Format = "webp"
		params.Transformation = "q_auto"
	}

	resp, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image to cloudinary: %w", err)
	}

	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload succeeded but secure URL is empty")
	}

	return resp.SecureURL, nil
}

func (s *cloudinaryStorage) UploadVideo(ctx context.Context, r io.Reader, folder, fileName string) (string, float64, error) {
	if s == nil || s.cld == nil {
		return "", 0, fmt.Errorf("cloudinary storage is not initialized")
	}

	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "video",
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		PublicID:       publicIDFor(fileName),
		Overwrite:      api.Bool(false),
		Transformation: "c_limit,w_720,h_1280/q_auto",
	}

	resp, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", 0, fmt.Errorf("failed to upload video to cloudinary: %w", err)
	}

	if resp.SecureURL == "" {
		return "", 0, fmt.Errorf("cloudinary upload succeeded but secure URL is empty")
	}

	return resp.SecureURL, videoDuration(resp.Response), nil
}

// videoDuration reads the duration from the raw upload response. UploadResult
// has no typed field for it; the API only reports it for video resources, so
// it lives in the raw payload. Returns 0 when absent, callers treat that as
// unknown.
func videoDuration(raw interface{}) float64 {
	payload, ok := raw.(map[string]interface{})
	if !ok {
		return 0
	}

	duration, ok := payload["duration"].(float64)
	if !ok {
		return 0
	}
	return duration
}

func (s *cloudinaryStorage) Delete(ctx context.Context, fileURL string) error {
	if s == nil || s.cld == nil {
		return fmt.Errorf("cloudinary storage is not initialized")
	}

	publicID := s.extractPublicID(fileURL)
	if publicID == "" {
		return fmt.Errorf("could not extract public ID from URL: %s", fileURL)
	}

	// Invalidate: true helps to clear CDN cache
	params := uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	}

	resp, err := s.cld.Upload.Destroy(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to delete file from cloudinary: %w", err)
	}

	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy api returned result: %s", resp.Result)
	}

	return nil
}

func publicIDFor(fileName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileName)
}

// extractPublicID attempts to extract the public ID from a Cloudinary URL.
// Example: https://res.cloudinary.com/demo/image/upload/v123456789/folder/sample.jpg -> folder/sample
func (s *cloudinaryStorage) extractPublicID(fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}

	// Path is roughly /<cloud_name>/<type>/upload/v<version>/<folder>/<file>.<ext>
	parts := strings.Split(u.Path, "/")
	uploadIndex := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIndex = i
			break
		}
	}

	if uploadIndex == -1 || uploadIndex+1 >= len(parts) {
		return ""
	}

	relevantParts := parts[uploadIndex+1:]

	// Cloudinary versions start with 'v' followed by numbers.
	if len(relevantParts) > 0 && strings.HasPrefix(relevantParts[0], "v") {
		relevantParts = relevantParts[1:]
	}

	if len(relevantParts) == 0 {
		return ""
	}

	joined := strings.Join(relevantParts, "/")
	ext := filepath.Ext(joined)
	return strings.TrimSuffix(joined, ext)
}
