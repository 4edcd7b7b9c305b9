package formatter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"

	"github.com/da-moon/datapull/internal/frame"
)

// Options configures the Parquet writer.
type Options struct {
	// Compression algorithm
	Compression CompressionType
}

// CompressionType represents a Parquet compression algorithm.
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionSnappy
	CompressionZstd
	CompressionLZ4
	CompressionGzip
)

// DefaultOptions returns default Parquet options.
func DefaultOptions() Options {
	return Options{
		Compression: CompressionSnappy,
	}
}

// ParseCompressionType parses a compression type string.
func ParseCompressionType(s string) CompressionType {
	switch s {
	case "snappy", "":
		return CompressionSnappy
	case "zstd":
		return CompressionZstd
	case "lz4":
		return CompressionLZ4
	case "gzip":
		return CompressionGzip
	case "none":
		return CompressionNone
	default:
		return CompressionSnappy
	}
}

// getCompression returns the parquet-go compression codec.
func getCompression(ct CompressionType) compress.Codec {
	switch ct {
	case CompressionSnappy:
		return &parquet.Snappy
	case CompressionZstd:
		return &parquet.Zstd
	case CompressionLZ4:
		return &parquet.Lz4Raw
	case CompressionGzip:
		return &parquet.Gzip
	default:
		return &parquet.Uncompressed
	}
}

// frameSchema builds the file schema from the table's column kinds. Every
// column is optional so missing cells persist as nulls.
func frameSchema(f *frame.Frame) *parquet.Schema {
	group := parquet.Group{}
	for _, col := range f.Cols() {
		var node parquet.Node
		switch col.Kind {
		case frame.Float:
			node = parquet.Leaf(parquet.DoubleType)
		case frame.Bool:
			node = parquet.Leaf(parquet.BooleanType)
		case frame.Time:
			node = parquet.Timestamp(parquet.Millisecond)
		default:
			node = parquet.String()
		}
		group[col.Name] = parquet.Optional(node)
	}

	return parquet.NewSchema("frame", group)
}

// frameRows converts the table to map rows. Missing cells omit the key and
// persist as nulls; timestamps persist as milliseconds since the epoch.
func frameRows(f *frame.Frame) []map[string]any {
	cols := f.Cols()
	rows := make([]map[string]any, f.Len())

	for i := range rows {
		row := make(map[string]any, len(cols))
		for _, col := range cols {
			if !col.IsValid(i) {
				continue
			}
			switch col.Kind {
			case frame.Float:
				row[col.Name] = col.FloatAt(i)
			case frame.Bool:
				row[col.Name] = col.BoolAt(i)
			case frame.Time:
				row[col.Name] = col.TimeAt(i).UnixMilli()
			default:
				row[col.Name] = col.StringAt(i)
			}
		}
		rows[i] = row
	}

	return rows
}

// WriteFrameParquet writes the table to a Parquet file at path
func WriteFrameParquet(path string, f *frame.Frame, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writer := parquet.NewGenericWriter[map[string]any](file, frameSchema(f),
		parquet.Compression(getCompression(opts.Compression)))

	if _, err := writer.Write(frameRows(f)); err != nil {
		file.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}

	if err := writer.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return file.Close()
}
