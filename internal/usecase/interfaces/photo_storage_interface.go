package interfaces

import "context"

// IPhotoStorage stores the photo proof of an avenant and returns the reference
// kept on the draft. Callers validate type and size before uploading.
type IPhotoStorage interface {
	Upload(ctx context.Context, filename string, contentType string, data []byte) (photoRef string, err error)
	// Delete removes a stored photo that no draft references any more.
	Delete(ctx context.Context, photoRef string) error
}
