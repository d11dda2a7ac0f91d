package tspfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/startriple/geom"
)

// Sentinel errors.
var (
	// ErrMissingSection indicates input without a NODE_COORD_SECTION line.
	ErrMissingSection = errors.New("tspfile: missing NODE_COORD_SECTION")

	// ErrMalformedLine indicates a coordinate record that cannot be parsed.
	ErrMalformedLine = errors.New("tspfile: malformed coordinate line")
)

// MaxLineBytes is the longest line Read accepts.
const MaxLineBytes = 1 << 20

const (
	sectionMarker = "NODE_COORD_SECTION"
	endMarker     = "EOF"
)

// Read parses the coordinate section of r.
//
// Complexity: O(size of input).
func Read(r io.Reader) ([]geom.Point, error) {
	var (
		line   int
		text   string
		inBody bool
		points []geom.Point
		p      geom.Point
		err    error
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	for sc.Scan() {
		line++
		text = strings.TrimSpace(sc.Text())

		if !inBody {
			inBody = text == sectionMarker
			continue
		}
		if text == "" {
			continue
		}
		if text == endMarker {
			break
		}
		if p, err = parseRecord(text); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err = sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			// The scanner stops before counting the offending line.
			return nil, fmt.Errorf("line %d: longer than %d bytes: %w", line+1, MaxLineBytes, ErrMalformedLine)
		}
		return nil, fmt.Errorf("tspfile: read: %w", err)
	}
	if !inBody {
		return nil, ErrMissingSection
	}

	return points, nil
}

// parseRecord decodes "<id> <x> <y>".
func parseRecord(text string) (geom.Point, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return geom.Point{}, fmt.Errorf("%q: want <id> <x> <y>: %w", text, ErrMalformedLine)
	}

	x, errX := strconv.ParseFloat(fields[1], 64)
	y, errY := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil {
		return geom.Point{}, fmt.Errorf("%q: %w", text, ErrMalformedLine)
	}

	p := geom.Pt(x, y)
	if !p.IsFinite() {
		return geom.Point{}, fmt.Errorf("%q: %w: %w", text, geom.ErrNonFinite, ErrMalformedLine)
	}

	return p, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tspfile: %w", err)
	}
	defer f.Close()

	points, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// Write emits points as a coordinate section.
func Write(w io.Writer, points []geom.Point) error {
	bw := bufio.NewWriter(w)

	var (
		i   int
		buf []byte
	)
	bw.WriteString(sectionMarker + "\n")
	for i = range points {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(i+1), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, points[i].X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, points[i].Y, 'g', -1, 64)
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	bw.WriteString(endMarker + "\n")

	// bufio keeps the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tspfile: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes points to it.
func WriteFile(path string, points []geom.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tspfile: %w", err)
	}
	if err = Write(f, points); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
