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

/*
Package binreader provides a bounds-checked sequential reader over an
in-memory byte buffer, aimed at binary container formats such as PNG.

The reader wraps a borrowed []byte and a cursor. Each operation decodes at the
cursor and advances it by exactly the bytes consumed; a failing operation
returns a typed error and leaves the cursor unchanged. Multi-byte integers are
always big-endian (network byte order), which is what the common container
formats use. There is no write path and no I/O: the caller loads the whole
buffer up front, for example with os.ReadFile.

# Quick Start

Walking the chunks of a PNG file:

	buf, err := os.ReadFile("image.png")
	if err != nil {
		return err
	}

	r := binreader.New(buf)
	if err := r.Expect([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}); err != nil {
		return err
	}

	for r.Remaining() > 0 {
		length, err := r.ReadUint32()
		if err != nil {
			return err
		}
		name, err := r.ReadUTF8(4)
		if err != nil {
			return err
		}

		// Isolate the chunk payload: reads on the sub-reader cannot
		// overrun into the next chunk.
		chunk, err := r.SplitOffFront(int(length))
		if err != nil {
			return err
		}
		if _, err := r.ReadUint32(); err != nil { // CRC
			return err
		}

		fmt.Println(name, chunk.Remaining())
	}

# Zero Copy

ReadBytes, PeekBytes and SplitOffFront return views into the original buffer
rather than copies. The views are valid as long as the buffer is; since the
reader never mutates the buffer, any number of readers and views may share it.
Use CopyBytes when the caller needs its own copy.

# Error Handling

Every fallible operation returns a binreader.Error. Errors carry a kind for
dispatch without string matching:

	n, err := r.ReadUint32()
	if binreader.KindOf(err) == binreader.ErrKindUnexpectedEOF {
		// no more records
	}

Kinds:

  - ErrKindUnexpectedEOF: the request exceeds the remaining bytes
  - ErrKindInvalidEncoding: text bytes are not valid UTF-8
  - ErrKindSignatureMismatch: Expect saw different bytes than required

The package never panics on malformed input and performs no logging; deciding
whether a failure is fatal to the overall parse belongs to the caller.

# Concurrency

A reader confines its cursor to one goroutine at a time; no internal locking
is provided. The underlying bytes are read-only and may back any number of
independent readers concurrently, including sub-readers from SplitOffFront.
*/
package binreader
