// Package media uploads product images to an image host.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrDisabled is returned by a Noop uploader.
var ErrDisabled = errors.New("image uploads are not configured")

// Image is a stored image.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Uploader stores and removes images.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, name string) (Image, error)
	Destroy(ctx context.Context, publicID string) error
}

// Cloudinary is an Uploader backed by a Cloudinary account.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary connects using a cloudinary:// URL. Images go to folder.
func NewCloudinary(url, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

// Upload stores file and returns its secure URL.
func (c *Cloudinary) Upload(ctx context.Context, file io.Reader, name string) (Image, error) {
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   c.folder,
		PublicID: name,
	})
	if err != nil {
		return Image{}, fmt.Errorf("failed to upload image %s: %w", name, err)
	}
	log.Printf("Uploaded image %s as %s", name, res.PublicID)
	return Image{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Destroy removes a previously uploaded image.
func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	if _, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to destroy image %s: %w", publicID, err)
	}
	log.Printf("Deleted image %s", publicID)
	return nil
}

// Noop rejects every upload. It is used when no image host is configured.
type Noop struct{}

func (Noop) Upload(context.Context, io.Reader, string) (Image, error) {
	return Image{}, ErrDisabled
}

func (Noop) Destroy(context.Context, string) error {
	return nil
}
