package libs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := map[string]struct {
		url  string
		want string
	}{
		"versioned delivery url": {
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/products/product_abc123.png",
			want: "products/product_abc123",
		},
		"no version segment": {
			url:  "https://res.cloudinary.com/demo/image/upload/products/product_abc123.jpg",
			want: "products/product_abc123",
		},
		"query string stripped": {
			url:  "https://res.cloudinary.com/demo/image/upload/v1/products/product_abc123.png?_a=1",
			want: "products/product_abc123",
		},
		"foreign host": {
			url:  "https://cdn.example.com/images/mug.png",
			want: "",
		},
		"empty": {
			url:  "",
			want: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, PublicIDFromURL(tc.url))
		})
	}
}
