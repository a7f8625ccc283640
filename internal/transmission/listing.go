// file: internal/transmission/listing.go
// version: 1.3.0
// guid: 43f21b7b-a608-4581-b833-26345468632f

package transmission

import (
	"strings"
	"unicode"
)

// ParseListing converts transmission-remote --list output into records. The
// table looks like:
//
//	ID   Done       Have  ETA           Up    Down  Ratio  Status       Name
//	1*   100%       1.05 GB  Done         0.0   0.0   0.00  Idle         Example.torrent
//	Sum:            1.05 GB               0.0   0.0
//
// The first line (header) and last line (summary) are dropped; every other
// line splits into at most nine whitespace-separated columns, with the ninth
// absorbing the rest of the line verbatim. Columns whose printed values
// contain spaces (a Have of "1.05 GB") shift everything after them one slot
// right; rows carry the tool's tokens exactly as printed, misaligned or not.
// Lines with fewer than nine columns are skipped. Input order is preserved
// and the function never fails.
func ParseListing(raw string) []TorrentRecord {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) < 2 {
		return []TorrentRecord{}
	}

	records := make([]TorrentRecord, 0, len(lines)-2)
	for _, line := range lines[1 : len(lines)-1] {
		cols := splitColumns(strings.TrimSuffix(line, "\r"), 9)
		if len(cols) < 9 {
			continue
		}
		records = append(records, TorrentRecord{
			ID:     cols[0],
			Done:   cols[1],
			Have:   cols[2],
			ETA:    cols[3],
			Up:     cols[4],
			Down:   cols[5],
			Ratio:  cols[6],
			Status: cols[7],
			Name:   cols[8],
		})
	}
	return records
}

// splitColumns splits line on runs of whitespace into at most n tokens. The
// final token keeps the remainder of the line, internal spacing included.
func splitColumns(line string, n int) []string {
	tokens := make([]string, 0, n)
	rest := line
	for len(tokens) < n-1 {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			return tokens
		}
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			return append(tokens, rest)
		}
		tokens = append(tokens, rest[:end])
		rest = rest[end:]
	}
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if rest != "" {
		tokens = append(tokens, rest)
	}
	return tokens
}
