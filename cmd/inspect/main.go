package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wippyai/webidl-runtime/buffer"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to the file to load into a buffer")
		offset      = flag.Int("offset", 0, "Byte offset of the view")
		count       = flag.Int("count", 16, "Number of elements to print")
		elemType    = flag.String("type", "u8", "Element type (u8,i8,u16,i16,u32,i32,u64,i64,f32,f64)")
		bigEndian   = flag.Bool("be", false, "Read multi-byte values big-endian")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -file <path> [-offset n] [-count n] [-type u32] [-be]")
		fmt.Fprintln(os.Stderr, "       inspect -file <path> -i  (interactive mode)")
		os.Exit(1)
	}

	buf, err := loadBuffer(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer buf.Close()

	if *interactive {
		if err := runInteractive(buf, *file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := dump(buf, *offset, *count, *elemType, !*bigEndian); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadBuffer copies a file's contents into a fresh owned buffer.
func loadBuffer(path string) (*buffer.ArrayBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	buf, err := buffer.New(len(data))
	if err != nil {
		return nil, err
	}
	dst, err := buf.Bytes()
	if err != nil {
		return nil, err
	}
	copy(dst, data)
	return buf, nil
}

// dump prints count elements of the requested type through a DataView.
func dump(buf *buffer.ArrayBuffer, offset, count int, elemType string, littleEndian bool) error {
	size, ok := elemSizes[elemType]
	if !ok {
		return fmt.Errorf("unknown element type %q", elemType)
	}
	dv, err := buffer.NewDataView(buf, offset, buf.ByteLength()-offset)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		at := i * size
		val, err := readElem(dv, at, elemType, littleEndian)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		fmt.Printf("%08x  %s\n", offset+at, val)
	}
	return nil
}

var elemSizes = map[string]int{
	"u8": 1, "i8": 1,
	"u16": 2, "i16": 2,
	"u32": 4, "i32": 4,
	"u64": 8, "i64": 8,
	"f32": 4, "f64": 8,
}

func readElem(dv *buffer.DataView, at int, elemType string, le bool) (string, error) {
	switch elemType {
	case "u8":
		v, err := dv.GetUint8(at)
		return fmt.Sprintf("%d", v), err
	case "i8":
		v, err := dv.GetInt8(at)
		return fmt.Sprintf("%d", v), err
	case "u16":
		v, err := dv.GetUint16(at, le)
		return fmt.Sprintf("%d", v), err
	case "i16":
		v, err := dv.GetInt16(at, le)
		return fmt.Sprintf("%d", v), err
	case "u32":
		v, err := dv.GetUint32(at, le)
		return fmt.Sprintf("%d", v), err
	case "i32":
		v, err := dv.GetInt32(at, le)
		return fmt.Sprintf("%d", v), err
	case "u64":
		v, err := dv.GetUint64(at, le)
		return fmt.Sprintf("%d", v), err
	case "i64":
		v, err := dv.GetInt64(at, le)
		return fmt.Sprintf("%d", v), err
	case "f32":
		v, err := dv.GetFloat32(at, le)
		return fmt.Sprintf("%g", v), err
	case "f64":
		v, err := dv.GetFloat64(at, le)
		return fmt.Sprintf("%g", v), err
	default:
		return "", fmt.Errorf("unknown element type %q", elemType)
	}
}
