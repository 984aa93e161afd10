package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge concatenates two PDF documents into one, first's pages followed by
// second's.
func Merge(first, second []byte) ([]byte, error) {
	readers := []io.ReadSeeker{bytes.NewReader(first), bytes.NewReader(second)}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, nil); err != nil {
		return nil, fmt.Errorf("failed to merge PDF documents: %w", err)
	}
	return buf.Bytes(), nil
}
