package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText reads a dataset with one example per line:
//
//	<class> <index> <index> ...
//
// Blank lines and lines starting with '#' are skipped. Classes must be in
// [0, numClasses) and indices in [0, inputSize).
func ReadText(r io.Reader, numClasses, inputSize int) (Dataset, error) {
	if numClasses <= 0 || inputSize <= 0 {
		return nil, fmt.Errorf("dataset: invalid shape %d classes x %d inputs", numClasses, inputSize)
	}
	ds := New(numClasses, inputSize)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		class, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: invalid class %q", line, fields[0])
		}
		indices := make([]uint32, 0, len(fields)-1)
		for _, f := range fields[1:] {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d: invalid index %q", line, f)
			}
			indices = append(indices, uint32(v))
		}
		if err := ds.Add(class, indices...); err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

// WriteText writes ds in the format read by ReadText.
func WriteText(w io.Writer, ds Dataset) error {
	bw := bufio.NewWriter(w)
	for class, rows := range ds {
		if rows == nil {
			continue
		}
		for i := 0; i < rows.NumRows(); i++ {
			indices, err := rows.RowIndices(i)
			if err != nil {
				return err
			}
			bw.WriteString(strconv.Itoa(class))
			for _, idx := range indices {
				bw.WriteByte(' ')
				bw.WriteString(strconv.FormatUint(uint64(idx), 10))
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
