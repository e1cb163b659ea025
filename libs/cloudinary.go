package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryEnabled reports whether an upload mirror is configured.
func CloudinaryEnabled() bool {
	return os.Getenv("CLOUDINARY_URL") != ""
}

// UploadToCloudinary mirrors a locally stored asset to Cloudinary and
// returns its secure URL. The local copy stays on disk; documents keep the
// relative path and the mirror URL is purely supplementary.
func UploadToCloudinary(localPath, folder string) (string, error) {
	cldURL := os.Getenv("CLOUDINARY_URL")
	if cldURL == "" {
		return "", fmt.Errorf("cloudinary environment variables not set")
	}

	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := cloudinary.NewFromURL(cldURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary init fail: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("%s_%d", folder, time.Now().UnixNano()),
		Folder:   folder,
	})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary response missing URL")
	}
	return resp.SecureURL, nil
}
