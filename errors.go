// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package binreader

import (
	"errors"
	"fmt"
)

// ErrorKind represents categories of reader errors for fast dispatch.
// Using an enum allows callers to branch on the failure class without
// string comparison.
type ErrorKind uint8

const (
	// ErrKindOK indicates no error occurred
	ErrKindOK ErrorKind = iota
	// ErrKindUnexpectedEOF indicates a read past the remaining buffer
	ErrKindUnexpectedEOF
	// ErrKindInvalidEncoding indicates text bytes that are not valid UTF-8
	ErrKindInvalidEncoding
	// ErrKindSignatureMismatch indicates an Expect whose actual bytes differ
	// from the expected literal
	ErrKindSignatureMismatch
)

// Error is a lightweight error type that stores failure details without
// formatting until Error() is called.
type Error struct {
	kind ErrorKind
	// For unexpected EOF and invalid encoding
	offset    int
	need      int
	remaining int
	// For signature mismatch
	want []byte
	got  []byte
}

// Kind returns the error kind for fast dispatch
func (e Error) Kind() ErrorKind {
	return e.kind
}

// Error implements the error interface with lazy formatting
func (e Error) Error() string {
	switch e.kind {
	case ErrKindOK:
		return ""
	case ErrKindUnexpectedEOF:
		return fmt.Sprintf("unexpected EOF: requested %d bytes at offset %d, but only %d bytes remain",
			e.need, e.offset, e.remaining)
	case ErrKindInvalidEncoding:
		return fmt.Sprintf("invalid encoding: %d bytes at offset %d are not valid UTF-8", e.need, e.offset)
	case ErrKindSignatureMismatch:
		return fmt.Sprintf("signature mismatch at offset %d: expected % x, got % x", e.offset, e.want, e.got)
	default:
		return fmt.Sprintf("binreader error: kind=%d", e.kind)
	}
}

// UnexpectedEOFError creates an unexpected EOF error
func UnexpectedEOFError(offset, need, remaining int) Error {
	return Error{
		kind:      ErrKindUnexpectedEOF,
		offset:    offset,
		need:      need,
		remaining: remaining,
	}
}

// InvalidEncodingError creates an invalid encoding error
func InvalidEncodingError(offset, length int) Error {
	return Error{
		kind:   ErrKindInvalidEncoding,
		offset: offset,
		need:   length,
	}
}

// SignatureMismatchError creates a signature mismatch error. The expected and
// actual bytes are copied so the error stays valid however the caller reuses
// the originals.
func SignatureMismatchError(offset int, want, got []byte) Error {
	return Error{
		kind:   ErrKindSignatureMismatch,
		offset: offset,
		want:   append([]byte(nil), want...),
		got:    append([]byte(nil), got...),
	}
}

// KindOf extracts the ErrorKind from any error returned by this package.
// It returns ErrKindOK for nil and for errors that did not originate here.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrKindOK
	}
	var e Error
	if errors.As(err, &e) {
		return e.kind
	}
	return ErrKindOK
}
