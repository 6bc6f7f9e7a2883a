// file: internals/helpers/oss/oss_file_service.go
package oss

import (
	"context"
	"io"
)

// BlobService is the uniform upload facade controllers depend on. Storage
// stays swappable; the production implementation is Aliyun OSS.
type BlobService interface {
	// UploadStream stores the bytes under key and returns the public URL.
	UploadStream(ctx context.Context, key string, r io.Reader, contentType string) (publicURL string, err error)
}

var _ BlobService = (*OSSService)(nil)
