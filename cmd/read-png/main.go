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

// Command read-png dumps the chunk structure of a PNG file using the
// binreader cursor, printing the decoded fields of the common chunks.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	binreader "github.com/sei-12/binary-file-reader"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <file.png>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Dumps the chunk structure of a PNG file.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	buf, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("read file")
	}

	if err := dumpChunks(buf); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("parse png")
	}
}

func dumpChunks(buf []byte) error {
	r := binreader.New(buf)
	if err := r.Expect(pngSignature); err != nil {
		return err
	}

	for {
		length, err := r.ReadUint32()
		if err != nil {
			return err
		}
		name, err := r.ReadUTF8(4)
		if err != nil {
			return err
		}
		chunk, err := r.SplitOffFront(int(length))
		if err != nil {
			return err
		}
		if _, err := r.ReadUint32(); err != nil { // CRC
			return err
		}

		fmt.Println()
		fmt.Printf("Chunk Name: %s\n", name)
		fmt.Printf("  %-20s: %d\n", "length", length)

		switch name {
		case "IHDR":
			if err := dumpIHDR(chunk); err != nil {
				return err
			}
		case "tEXt":
			text, err := chunk.ReadUTF8(chunk.Remaining())
			if err != nil {
				return err
			}
			fmt.Printf("  %s\n", text)
		case "pHYs":
			if err := dumpPHYs(chunk); err != nil {
				return err
			}
		case "tIME":
			if err := dumpTIME(chunk); err != nil {
				return err
			}
		case "IEND":
			return nil
		}
	}
}

func dumpIHDR(chunk *binreader.BinaryFileReader) error {
	fields := []string{
		"width", "height", "bit depth", "color type",
		"compression method", "filter method", "interlace method",
	}
	for i, field := range fields {
		var v uint32
		var err error
		if i < 2 {
			v, err = chunk.ReadUint32()
		} else {
			var b uint8
			b, err = chunk.ReadUint8()
			v = uint32(b)
		}
		if err != nil {
			return err
		}
		fmt.Printf("  %-20s: %d\n", field, v)
	}
	return nil
}

func dumpPHYs(chunk *binreader.BinaryFileReader) error {
	x, err := chunk.ReadUint32()
	if err != nil {
		return err
	}
	y, err := chunk.ReadUint32()
	if err != nil {
		return err
	}
	unit, err := chunk.ReadUint8()
	if err != nil {
		return err
	}
	fmt.Printf("  %-20s: %d\n", "PX per unit, X axis", x)
	fmt.Printf("  %-20s: %d\n", "PX per unit, Y axis", y)
	fmt.Printf("  %-20s: %d\n", "Unit specifier", unit)
	return nil
}

func dumpTIME(chunk *binreader.BinaryFileReader) error {
	year, err := chunk.ReadUint16()
	if err != nil {
		return err
	}
	var rest [5]uint8
	for i := range rest {
		if rest[i], err = chunk.ReadUint8(); err != nil {
			return err
		}
	}
	fmt.Printf("  %d/%d/%d %d:%d:%d\n", year, rest[0], rest[1], rest[2], rest[3], rest[4])
	return nil
}
