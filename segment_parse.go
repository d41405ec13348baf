package sweep

import (
	"bytes"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

func isSegmentSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == ',' || c == ';' || c == '(' || c == ')' || c == '[' || c == ']'
}

// ParseSegments reads one segment per line as four numbers x0 y0 x1 y1. Numbers are separated by whitespace, commas or semicolons, and brackets and parentheses are ignored so that the output of Segment.String can be read back. A # starts a comment, blank lines are skipped.
func ParseSegments(r io.Reader) ([]Segment[float64], error) {
	return parseSegments(r, strconv.ParseFloat)
}

// ParseIntSegments is like ParseSegments for integer coordinates.
func ParseIntSegments(r io.Reader) ([]Segment[int64], error) {
	return parseSegments(r, strconv.ParseInt)
}

// MustParseSegments parses a string of segments and panics on error.
func MustParseSegments(s string) []Segment[float64] {
	segs, err := ParseSegments(bytes.NewBufferString(s))
	if err != nil {
		panic(err)
	}
	return segs
}

func parseSegments[T Number](r io.Reader, parseNum func([]byte) (T, int)) ([]Segment[T], error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var segs []Segment[T]
	var coords [4]T
	for offset := 0; offset < len(b); {
		end := bytes.IndexByte(b[offset:], '\n')
		if end == -1 {
			end = len(b)
		} else {
			end += offset
		}
		line := b[offset:end]
		if i := bytes.IndexByte(line, '#'); i != -1 {
			line = line[:i]
		}

		k := 0
		for i := 0; i < len(line); {
			if isSegmentSeparator(line[i]) {
				i++
				continue
			}
			num, n := parseNum(line[i:])
			if n == 0 {
				return nil, parse.NewError(bytes.NewReader(b), offset+i, "unexpected %q in segment", line[i])
			} else if k == len(coords) {
				return nil, parse.NewError(bytes.NewReader(b), offset+i, "too many coordinates for segment")
			}
			coords[k] = num
			k++
			i += n
		}
		if k == len(coords) {
			segs = append(segs, Seg(coords[0], coords[1], coords[2], coords[3]))
		} else if k != 0 {
			return nil, parse.NewError(bytes.NewReader(b), offset, "expected 4 coordinates for segment, got %d", k)
		}
		offset = end + 1
	}
	return segs, nil
}
