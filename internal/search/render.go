package search

import (
	"bufio"
	"fmt"
	"io"

	"fsidx/internal/bytesize"
)

// HitList collects hits for table/JSON/YAML rendering via the output
// package's Printer. It satisfies output.TableRenderer without this
// package importing output, avoiding a dependency cycle with cmd callers
// that wire both together.
type HitList struct {
	Hits     []Hit
	ShowSize bool
}

// Headers implements output.TableRenderer.
func (h HitList) Headers() []string {
	if h.ShowSize {
		return []string{"#", "PATH", "SIZE"}
	}
	return []string{"#", "PATH"}
}

// Rows implements output.TableRenderer.
func (h HitList) Rows() [][]string {
	rows := make([][]string, 0, len(h.Hits))
	for _, hit := range h.Hits {
		if h.ShowSize {
			size := "-"
			if hit.HasSize {
				size = bytesize.ByteSize(hit.Size).String()
			}
			rows = append(rows, []string{fmt.Sprintf("%d", hit.Ordinal), hit.Path, size})
		} else {
			rows = append(rows, []string{fmt.Sprintf("%d", hit.Ordinal), hit.Path})
		}
	}
	return rows
}

// WritePlain renders hits the way the original locate-style tool does: one
// line per hit, "<ordinal>. <path>" optionally followed by "(<size> bytes)"
// when the database recorded a size for that entry.
func WritePlain(w io.Writer, hits []Hit) error {
	bw := bufio.NewWriter(w)
	for _, hit := range hits {
		var err error
		if hit.HasSize {
			_, err = fmt.Fprintf(bw, "%d. %s (%d bytes)\n", hit.Ordinal, hit.Path, hit.Size)
		} else {
			_, err = fmt.Fprintf(bw, "%d. %s\n", hit.Ordinal, hit.Path)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
