// file: internals/helpers/storage/oss_storage.go
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"strconv"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BlobService is the storage facade controllers use for course cover images:
// attach new, delete old, get a public URL back. The content model treats the
// store as opaque.
type BlobService interface {
	UploadCoverImage(ctx context.Context, workspaceID uuid.UUID, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxCoverEdge  = 1600 // px, longest edge after resize
)

func envFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			return float32(f)
		}
	}
	return def
}

// OSSBlobService stores covers in an Aliyun OSS bucket, re-encoded to WebP.
type OSSBlobService struct {
	bucket     *oss.Bucket
	publicBase string
	prefix     string
	quality    float32
}

// NewOSSBlobServiceFromEnv builds the service from OSS_ENDPOINT,
// OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET, OSS_BUCKET and optional
// OSS_PUBLIC_BASE_URL / OSS_PREFIX / OSS_WEBP_QUALITY.
func NewOSSBlobServiceFromEnv() (*OSSBlobService, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, errors.New("storage: OSS env is not configured")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("storage: oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("storage: oss bucket: %w", err)
	}

	publicBase := strings.TrimRight(strings.TrimSpace(os.Getenv("OSS_PUBLIC_BASE_URL")), "/")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}
	prefix := strings.Trim(strings.TrimSpace(os.Getenv("OSS_PREFIX")), "/")

	return &OSSBlobService{
		bucket:     bucket,
		publicBase: publicBase,
		prefix:     prefix,
		quality:    envFloat("OSS_WEBP_QUALITY", 80),
	}, nil
}

// UploadCoverImage decodes the multipart image, fits it inside the max edge
// and re-encodes to WebP before uploading. Returns the public URL.
func (s *OSSBlobService) UploadCoverImage(ctx context.Context, workspaceID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Cover image file is missing")
	}
	if workspaceID == uuid.Nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "workspace_id is not valid")
	}
	if fh.Size > maxUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Cover image exceeds the 5MB limit")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Cannot open uploaded file")
	}
	defer src.Close()

	img, _, err := image.Decode(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Uploaded file is not a supported image")
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxCoverEdge || bounds.Dy() > maxCoverEdge {
		img = imaging.Fit(img, maxCoverEdge, maxCoverEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: s.quality}); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Cover image re-encode failed")
	}

	key := s.objectKey(workspaceID)
	if err := s.bucket.PutObject(key, bytes.NewReader(buf.Bytes()), oss.ContentType("image/webp")); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Cover image upload failed")
	}
	return s.publicBase + "/" + key, nil
}

// DeleteByPublicURL removes the object behind a previously returned URL.
// URLs outside our public base are ignored.
func (s *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, ok := s.keyFromPublicURL(publicURL)
	if !ok {
		return nil
	}
	return s.bucket.DeleteObject(key)
}

func (s *OSSBlobService) objectKey(workspaceID uuid.UUID) string {
	key := fmt.Sprintf("workspaces/%s/covers/%s.webp", workspaceID, uuid.NewString())
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}
	return key
}

func (s *OSSBlobService) keyFromPublicURL(publicURL string) (string, bool) {
	u := strings.TrimSpace(publicURL)
	if u == "" || !strings.HasPrefix(u, s.publicBase+"/") {
		return "", false
	}
	return strings.TrimPrefix(u, s.publicBase+"/"), true
}
