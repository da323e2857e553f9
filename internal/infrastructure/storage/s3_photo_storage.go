package storage

import (
	"bytes"
	"chantierplus/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const keyPrefix = "uploads"

// ObjectAPI is the subset of the S3 client used to store photos.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3PhotoStorage stores photo proofs under uploads/<uuid><ext>. The object
// key is the photo reference kept on the avenant.
type S3PhotoStorage struct {
	client ObjectAPI
	bucket string
}

var _ interfaces.IPhotoStorage = (*S3PhotoStorage)(nil)

func NewS3PhotoStorage(client ObjectAPI, bucket string) *S3PhotoStorage {
	return &S3PhotoStorage{client: client, bucket: bucket}
}

func (s *S3PhotoStorage) Upload(ctx context.Context, filename string, contentType string, data []byte) (string, error) {
	key := newKey(filename, contentType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		Metadata: map[string]string{
			"original-filename": sanitizeFilename(filename),
		},
	})
	if err != nil {
		return "", err
	}
	log.Printf("[avenant][storage] photo stored bucket=%s key=%s size=%d", s.bucket, key, len(data))
	return key, nil
}

func (s *S3PhotoStorage) Delete(ctx context.Context, photoRef string) error {
	if !strings.HasPrefix(photoRef, keyPrefix+"/") {
		return fmt.Errorf("photo ref %q is outside %s/", photoRef, keyPrefix)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(photoRef),
	})
	if err != nil {
		return err
	}
	log.Printf("[avenant][storage] photo deleted bucket=%s key=%s", s.bucket, photoRef)
	return nil
}

// MockPhotoStorage keeps nothing and hands out references in the same format.
type MockPhotoStorage struct{}

var _ interfaces.IPhotoStorage = MockPhotoStorage{}

func (MockPhotoStorage) Upload(_ context.Context, filename string, contentType string, data []byte) (string, error) {
	key := newKey(filename, contentType)
	log.Printf("[avenant][storage] mock mode key=%s size=%d", key, len(data))
	return key, nil
}

func (MockPhotoStorage) Delete(_ context.Context, photoRef string) error {
	log.Printf("[avenant][storage] mock mode delete key=%s", photoRef)
	return nil
}

func newKey(filename, contentType string) string {
	return path.Join(keyPrefix, uuid.NewString()+extension(filename, contentType))
}

// extension prefers the one of the detected type over the client filename.
func extension(filename, contentType string) string {
	if mt := mimetype.Lookup(contentType); mt != nil && mt.Extension() != "" {
		return mt.Extension()
	}
	return strings.ToLower(filepath.Ext(filename))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r > 0x7e {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
