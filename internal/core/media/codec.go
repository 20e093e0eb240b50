// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package media converts caller-supplied binary blobs (video, image, audio)
// into the inline transport encoding a multimodal generation request needs:
// a base64 payload paired with a MIME type.
//
// Logic Flow:
//  1. The caller hands over a Blob wrapping an open reader and, usually, a
//     MIME type from the upload (multipart Content-Type header).
//  2. Encode drains the reader fully into memory in one shot. The caller may
//     release the underlying handle any time after Encode returns.
//  3. When no MIME type was supplied, the content is sniffed from its magic
//     bytes so the inference service still receives a usable part.
//  4. The bytes are base64-encoded into an InlinePart, which is discarded
//     after one inference call.
//
// No size cap is enforced here; warning about oversized uploads is the
// calling surface's job. The only failure mode is an unreadable source,
// which is reported as a *ReadError.
package media

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/h2non/filetype"
)

// Blob is an opaque binary input owned by the caller. Content is read
// exactly once during encoding and never mutated. MIMEType may be empty,
// in which case the codec sniffs it from the content.
type Blob struct {
	Content  io.Reader
	MIMEType string
}

// NewBlob wraps an open reader and its declared MIME type.
func NewBlob(content io.Reader, mimeType string) Blob {
	return Blob{Content: content, MIMEType: mimeType}
}

// InlinePart is the transport form of a blob: the base64 payload plus the
// MIME type, ready to be embedded in a generation request.
type InlinePart struct {
	Data     string
	MIMEType string
}

// ReadError signals that the blob's underlying handle could not be drained.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read media content: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Encode reads the blob fully into memory and produces its inline transport
// encoding. The result is independent of the blob's lifetime once returned.
//
// Inputs:
//   - blob: The binary input to encode. Its reader is fully consumed.
//
// Outputs:
//   - InlinePart: The base64 payload paired with the resolved MIME type.
//   - error: A *ReadError if the content could not be read.
func Encode(blob Blob) (InlinePart, error) {
	if blob.Content == nil {
		return InlinePart{}, &ReadError{Err: fmt.Errorf("blob has no content")}
	}
	data, err := io.ReadAll(blob.Content)
	if err != nil {
		return InlinePart{}, &ReadError{Err: err}
	}

	mimeType := blob.MIMEType
	if mimeType == "" {
		// Best effort; an unrecognized payload keeps an empty MIME type and
		// the transport decides whether to accept it.
		if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
			mimeType = kind.MIME.Value
		}
	}

	return InlinePart{
		Data:     base64.StdEncoding.EncodeToString(data),
		MIMEType: mimeType,
	}, nil
}
