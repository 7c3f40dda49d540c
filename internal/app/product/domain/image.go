package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// BlobName builds the object name for a product image: product-<id>-<token><ext>.
// The token keeps names unique across retries and re-uploads for the same product.
func BlobName(productID int64, token, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("product-%d-%s%s", productID, token, ext)
}

// BlobNameFromURL returns the object name an image URL refers to: its last path segment.
func BlobNameFromURL(imageURL string) string {
	if imageURL == "" {
		return ""
	}
	if u, err := url.Parse(imageURL); err == nil && u.Path != "" {
		name := path.Base(u.Path)
		if unescaped, err := url.PathUnescape(name); err == nil {
			return unescaped
		}
		return name
	}
	if i := strings.LastIndex(imageURL, "/"); i >= 0 {
		return imageURL[i+1:]
	}
	return imageURL
}
