package libs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

func newClient() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return nil, fmt.Errorf("cloudinary environment variables not set")
		}
		return cloudinary.NewFromURL(cldURL)
	}

	return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
}

// UploadProductImage pushes a local file to Cloudinary and returns its secure
// URL. The local file is removed afterwards regardless of outcome.
func UploadProductImage(localPath string) (string, error) {
	cld, err := newClient()
	if err != nil {
		return "", fmt.Errorf("cloudinary init failed: %w", err)
	}

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("product_%s", uuid.NewString()),
		Folder:   "products",
	})

	os.Remove(localPath)

	if err != nil {
		return "", err
	}
	if resp == nil || (resp.SecureURL == "" && resp.URL == "") {
		return "", fmt.Errorf("cloudinary returned an empty response")
	}

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	return resp.URL, nil
}

// PublicIDFromURL recovers the Cloudinary public ID from a delivery URL so a
// replaced image can be destroyed. Returns "" for URLs not hosted there.
func PublicIDFromURL(url string) string {
	parts := strings.Split(url, "/")

	uploadIndex := -1
	for i, part := range parts {
		if part == "upload" {
			uploadIndex = i
			break
		}
	}
	if uploadIndex == -1 || uploadIndex >= len(parts)-1 {
		return ""
	}

	idParts := parts[uploadIndex+1:]

	// Skip the version segment (v1234567890) when present.
	if len(idParts) > 1 && strings.HasPrefix(idParts[0], "v") {
		allDigits := len(idParts[0]) > 1
		for _, r := range idParts[0][1:] {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			idParts = idParts[1:]
		}
	}

	publicID := strings.Join(idParts, "/")
	if qIndex := strings.Index(publicID, "?"); qIndex != -1 {
		publicID = publicID[:qIndex]
	}
	if dotIndex := strings.LastIndex(publicID, "."); dotIndex != -1 {
		publicID = publicID[:dotIndex]
	}
	return publicID
}

func DeleteImage(publicID string) error {
	cld, err := newClient()
	if err != nil {
		return fmt.Errorf("cloudinary init failed: %w", err)
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}

	return nil
}
