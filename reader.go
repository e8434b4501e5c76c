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
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

// BinaryFileReader provides bounds-checked sequential access to an in-memory
// byte buffer. It holds a borrowed reference to the buffer and a cursor; every
// read decodes at the cursor and advances it by the bytes consumed. Failed
// operations never move the cursor. All multi-byte integers are big-endian.
//
// The buffer is never mutated. Byte slices returned by ReadBytes, PeekBytes
// and SplitOffFront alias the underlying buffer, so they stay valid exactly as
// long as the buffer does.
//
// A BinaryFileReader is not safe for concurrent use; the underlying bytes may
// be shared freely between independent readers.
type BinaryFileReader struct {
	data   []byte
	cursor int
}

// New creates a reader positioned at the start of data. A nil or empty buffer
// is valid and simply has nothing to read.
func New(data []byte) *BinaryFileReader {
	return &BinaryFileReader{data: data}
}

// Remaining reports the number of unread bytes.
func (r *BinaryFileReader) Remaining() int {
	return len(r.data) - r.cursor
}

// Offset reports the cursor position from the start of the buffer.
func (r *BinaryFileReader) Offset() int {
	return r.cursor
}

// peek returns the next n bytes without advancing the cursor. A negative n is
// rejected the same way as an overlong one so the slice below cannot panic.
func (r *BinaryFileReader) peek(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, UnexpectedEOFError(r.cursor, n, r.Remaining())
	}
	return r.data[r.cursor : r.cursor+n], nil
}

// ReadUint8 reads one byte.
func (r *BinaryFileReader) ReadUint8() (uint8, error) {
	b, err := r.peek(1)
	if err != nil {
		return 0, err
	}
	r.cursor++
	return b[0], nil
}

// ReadUint16 reads a big-endian uint16.
func (r *BinaryFileReader) ReadUint16() (uint16, error) {
	b, err := r.peek(2)
	if err != nil {
		return 0, err
	}
	r.cursor += 2
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 reads a big-endian uint32.
func (r *BinaryFileReader) ReadUint32() (uint32, error) {
	b, err := r.peek(4)
	if err != nil {
		return 0, err
	}
	r.cursor += 4
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 reads a big-endian uint64.
func (r *BinaryFileReader) ReadUint64() (uint64, error) {
	b, err := r.peek(8)
	if err != nil {
		return 0, err
	}
	r.cursor += 8
	return binary.BigEndian.Uint64(b), nil
}

// ReadUint4 reads one byte and returns its upper and lower nibbles.
func (r *BinaryFileReader) ReadUint4() (hi, lo uint8, err error) {
	b, err := r.peek(1)
	if err != nil {
		return 0, 0, err
	}
	r.cursor++
	return b[0] >> 4, b[0] & 0x0f, nil
}

// ReadBytes consumes the next n bytes and returns them as a subslice of the
// underlying buffer, without copying.
func (r *BinaryFileReader) ReadBytes(n int) ([]byte, error) {
	b, err := r.peek(n)
	if err != nil {
		return nil, err
	}
	r.cursor += n
	return b, nil
}

// CopyBytes consumes len(dst) bytes and copies them into dst.
func (r *BinaryFileReader) CopyBytes(dst []byte) error {
	b, err := r.peek(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	r.cursor += len(dst)
	return nil
}

// ReadUTF8 consumes n bytes and decodes them as UTF-8 text. If the bytes are
// not valid UTF-8 it returns an ErrKindInvalidEncoding error and, like every
// failing operation, leaves the cursor where it was.
func (r *BinaryFileReader) ReadUTF8(n int) (string, error) {
	s, err := r.PeekUTF8(n)
	if err != nil {
		return "", err
	}
	r.cursor += n
	return s, nil
}

// Expect consumes len(want) bytes and verifies they equal want, advancing the
// cursor only on a match. Use it for magic numbers and format signatures.
func (r *BinaryFileReader) Expect(want []byte) error {
	if err := r.ExpectPeek(want); err != nil {
		return err
	}
	r.cursor += len(want)
	return nil
}

// ExpectUTF8 is Expect over the UTF-8 encoding of s.
func (r *BinaryFileReader) ExpectUTF8(s string) error {
	return r.Expect([]byte(s))
}

// SplitOffFront carves the next n bytes off the front of the remaining buffer
// and returns a new independent reader over exactly those bytes, cursor at 0.
// The parent advances past them. No bytes are copied; the two readers share
// only the read-only buffer, so nested reads on the child can never overrun
// into the parent's remainder.
func (r *BinaryFileReader) SplitOffFront(n int) (*BinaryFileReader, error) {
	b, err := r.peek(n)
	if err != nil {
		return nil, err
	}
	r.cursor += n
	return New(b), nil
}

// PeekUint8 returns the next byte without advancing.
func (r *BinaryFileReader) PeekUint8() (uint8, error) {
	b, err := r.peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// PeekUint16 returns the next big-endian uint16 without advancing.
func (r *BinaryFileReader) PeekUint16() (uint16, error) {
	b, err := r.peek(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// PeekUint32 returns the next big-endian uint32 without advancing.
func (r *BinaryFileReader) PeekUint32() (uint32, error) {
	b, err := r.peek(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// PeekUint64 returns the next big-endian uint64 without advancing.
func (r *BinaryFileReader) PeekUint64() (uint64, error) {
	b, err := r.peek(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// PeekUint4 returns the nibbles of the next byte without advancing.
func (r *BinaryFileReader) PeekUint4() (hi, lo uint8, err error) {
	b, err := r.peek(1)
	if err != nil {
		return 0, 0, err
	}
	return b[0] >> 4, b[0] & 0x0f, nil
}

// PeekBytes returns the next n bytes as a subslice of the underlying buffer
// without advancing.
func (r *BinaryFileReader) PeekBytes(n int) ([]byte, error) {
	return r.peek(n)
}

// CopyPeekBytes copies the next len(dst) bytes into dst without advancing.
func (r *BinaryFileReader) CopyPeekBytes(dst []byte) error {
	b, err := r.peek(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// PeekUTF8 decodes the next n bytes as UTF-8 text without advancing.
func (r *BinaryFileReader) PeekUTF8(n int) (string, error) {
	b, err := r.peek(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", InvalidEncodingError(r.cursor, n)
	}
	return string(b), nil
}

// ExpectPeek verifies the next len(want) bytes equal want without advancing.
func (r *BinaryFileReader) ExpectPeek(want []byte) error {
	got, err := r.peek(len(want))
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return SignatureMismatchError(r.cursor, want, got)
	}
	return nil
}
