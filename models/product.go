package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ImageKind string

const (
	ImageKindURL    ImageKind = "url"
	ImageKindInline ImageKind = "inline"
)

// ImageSource is a tagged variant: a product image is either a URL or an
// inline base64 payload, never both.
type ImageSource struct {
	Kind ImageKind `json:"kind"`
	URL  string    `json:"url,omitempty"`
	Data string    `json:"data,omitempty"`
}

// NewImageSource folds the two nullable storage columns into one variant.
// URL takes precedence when both are populated.
func NewImageSource(imageURL, imageData *string) *ImageSource {
	if imageURL != nil && *imageURL != "" {
		return &ImageSource{Kind: ImageKindURL, URL: *imageURL}
	}
	if imageData != nil && *imageData != "" {
		return &ImageSource{Kind: ImageKindInline, Data: *imageData}
	}
	return nil
}

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       *ImageSource    `json:"image,omitempty"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	ImageData   *string         `json:"imageData,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
