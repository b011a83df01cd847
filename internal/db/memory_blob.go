package db

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// dataURIPrefix marks synthetic blob refs; the "blob" lives inside the
// locator itself, so no lookup table is needed for serving it.
const dataURIPrefix = "data:"

// memoryBlobStore implements BlobStore without any network call: the
// payload is encoded into a data URI that browsers can render directly.
type memoryBlobStore struct {
	mu      sync.Mutex
	removed []string
}

func (s *memoryBlobStore) Upload(_ context.Context, ownerID, fileName, contentType string, data []byte) (*UploadResult, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for upload")
	}
	uri := fmt.Sprintf("%s%s;base64,%s", dataURIPrefix, contentType, base64.StdEncoding.EncodeToString(data))
	return &UploadResult{
		Ref:       uri,
		PublicURL: uri,
		FileName:  fileName,
		FileType:  contentType,
	}, nil
}

func (s *memoryBlobStore) Remove(_ context.Context, ref string) error {
	if ref == "" || !strings.HasPrefix(ref, dataURIPrefix) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, ref)
	return nil
}
