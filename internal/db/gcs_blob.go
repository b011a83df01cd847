package db

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// gcsBlobStore implements BlobStore over the Firebase project's default
// Cloud Storage bucket.
type gcsBlobStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// Upload writes the payload under an owner-scoped object name of the
// form "{ownerID}/{unix-ms}-{rand}.{ext}" and returns its locator and
// public URL.
func (s *gcsBlobStore) Upload(ctx context.Context, ownerID, fileName, contentType string, data []byte) (*UploadResult, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for upload")
	}
	ext := path.Ext(fileName)
	objectName := fmt.Sprintf("%s/%d-%s%s",
		ownerID, time.Now().UnixMilli(), strings.Split(uuid.NewString(), "-")[0], ext)

	w := s.bucket.Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, translateRemoteErr("upload blob", err)
	}
	if err := w.Close(); err != nil {
		return nil, translateRemoteErr("finalize blob upload", err)
	}

	return &UploadResult{
		Ref:       objectName,
		PublicURL: fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName),
		FileName:  fileName,
		FileType:  contentType,
	}, nil
}

func (s *gcsBlobStore) Remove(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	if err := s.bucket.Object(ref).Delete(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil
		}
		return translateRemoteErr("remove blob", err)
	}
	return nil
}
