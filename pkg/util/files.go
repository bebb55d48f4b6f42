package util

import (
	"bufio"
	"compress/bzip2"
	"errors"
	"io"
	"os"
	"path"
	"strings"
)

// ReadInputFile reads an input file as a sequence of lines, skipping blank
// lines and line comments (prefixed "#").  Files with a ".bz2" extension are
// decompressed on the fly.  A missing file reads as empty.
func ReadInputFile(filename string) []string {
	file, err := os.Open(filename)
	//
	if errors.Is(err, os.ErrNotExist) {
		return []string{}
	} else if err != nil {
		panic(err)
	}
	//
	defer func() {
		if err := file.Close(); err != nil {
			panic(err)
		}
	}()
	// apply compression
	var reader io.Reader = file
	//
	if path.Ext(filename) == ".bz2" {
		reader = bzip2.NewReader(file)
	}
	//
	var (
		scanner = bufio.NewScanner(reader)
		lines   []string
	)
	// Allow for long lines
	scanner.Buffer(make([]byte, 0, 1024*128), 1024*1024)
	//
	for scanner.Scan() {
		// Strip any comment, then surrounding whitespace
		text, _, _ := strings.Cut(scanner.Text(), "#")
		//
		if text = strings.TrimSpace(text); text != "" {
			lines = append(lines, text)
		}
	}
	//
	if err := scanner.Err(); err != nil {
		panic(err)
	}
	// Done
	return lines
}
