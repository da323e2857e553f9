package entities

import (
	"encoding/base64"
	"time"
)

// SignatureArtifact is the encoded image of a client signature.
//
// Digest is the hex SHA-256 of Data. ContentDigest is the digest of the
// avenant content the client attested to when signing; it is set by the
// composition session, not by the capture pad.
type SignatureArtifact struct {
	Data          []byte
	ContentType   string
	Digest        string
	ContentDigest string
	CapturedAt    time.Time
}

// DataURL renders the artifact the way it is stored and embedded in emails.
func (s SignatureArtifact) DataURL() string {
	return "data:" + s.ContentType + ";base64," + base64.StdEncoding.EncodeToString(s.Data)
}
