package utmp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// rawRecord is struct utmp as glibc writes it to disk.
type rawRecord struct {
	Type    int16
	_       [2]byte
	PID     int32
	Line    [32]byte
	ID      [4]byte
	User    [32]byte
	Host    [256]byte
	Exit    [2]int16
	Session int32
	Sec     int32
	Usec    int32
	AddrV6  [4]int32
	_       [20]byte
}

// recordSize is the on-disk size of rawRecord.
const recordSize = 384

// File reads records from a utmp accounting file.
type File struct {
	Path string
}

// Records decodes every complete record in the file. A missing file has no
// records; a trailing partial record is dropped.
func (f File) Records(ctx context.Context) ([]Record, error) {
	file, err := os.Open(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open accounting file: %w", err)
	}
	defer file.Close()

	return decode(ctx, bufio.NewReaderSize(file, 16*recordSize))
}

func decode(ctx context.Context, r io.Reader) ([]Record, error) {
	var records []Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var raw rawRecord
		err := binary.Read(r, binary.NativeEndian, &raw)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode accounting record: %w", err)
		}
		records = append(records, raw.record())
	}
}

func (raw *rawRecord) record() Record {
	return Record{
		Type: Type(raw.Type),
		PID:  raw.PID,
		Line: cstring(raw.Line[:]),
		ID:   cstring(raw.ID[:]),
		User: cstring(raw.User[:]),
		Host: cstring(raw.Host[:]),
		Time: time.Unix(int64(raw.Sec), int64(raw.Usec)*int64(time.Microsecond)),
	}
}

func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
