// file: internal/transmission/listing_test.go
// version: 1.1.0
// guid: 6f0f4f5a-9b3c-4bfa-8a6e-2d9c51b7e430

package transmission

import (
	"strings"
	"testing"
)

func TestParseListing_EmptyInput(t *testing.T) {
	records := ParseListing("")
	if len(records) != 0 {
		t.Errorf("expected empty snapshot for empty input, got %d records", len(records))
	}
	if records == nil {
		t.Error("expected non-nil slice so JSON encodes [] instead of null")
	}
}

func TestParseListing_SingleLine(t *testing.T) {
	// A lone header (or any single line) carries no rows.
	records := ParseListing("ID Done Have ETA Up Down Ratio Status Name")
	if len(records) != 0 {
		t.Errorf("expected empty snapshot for single-line input, got %d records", len(records))
	}
}

func TestParseListing_HeaderAndSummaryOnly(t *testing.T) {
	raw := "ID Done Have ETA Up Down Ratio Status Name\nSum: 0 torrents"
	records := ParseListing(raw)
	if len(records) != 0 {
		t.Errorf("expected empty snapshot when only header and summary remain, got %d records", len(records))
	}
}

func TestParseListing_SingleRecord(t *testing.T) {
	raw := strings.Join([]string{
		"ID Done Have ETA Up Down Ratio Status Name",
		"1 100% 1.05GB Done 0.0 0.0 0.00 Idle Example.torrent",
		"Sum: 1 torrent",
	}, "\n")

	records := ParseListing(raw)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.ID != "1" {
		t.Errorf("expected id '1', got %q", rec.ID)
	}
	if rec.Done != "100%" {
		t.Errorf("expected done '100%%', got %q", rec.Done)
	}
	if rec.Have != "1.05GB" {
		t.Errorf("expected have '1.05GB', got %q", rec.Have)
	}
	if rec.ETA != "Done" {
		t.Errorf("expected eta 'Done', got %q", rec.ETA)
	}
	if rec.Up != "0.0" {
		t.Errorf("expected up '0.0', got %q", rec.Up)
	}
	if rec.Down != "0.0" {
		t.Errorf("expected down '0.0', got %q", rec.Down)
	}
	if rec.Ratio != "0.00" {
		t.Errorf("expected ratio '0.00', got %q", rec.Ratio)
	}
	if rec.Status != "Idle" {
		t.Errorf("expected status 'Idle', got %q", rec.Status)
	}
	if rec.Name != "Example.torrent" {
		t.Errorf("expected name 'Example.torrent', got %q", rec.Name)
	}
}

// TestParseListing_SpaceInHaveColumn documents the known column shift: a Have
// value printed as "1.05 GB" splits into two tokens, so every later column
// lands one slot to the right and the name keeps the overflow. The tool's
// output is carried as-is rather than re-aligned.
func TestParseListing_SpaceInHaveColumn(t *testing.T) {
	raw := strings.Join([]string{
		"ID Done Have ETA Up Down Ratio Status Name",
		"1*   100%       1.05 GB  Done         0.0   0.0   0.00  Idle         Example.torrent",
		"Sum: 1 torrent",
	}, "\n")

	records := ParseListing(raw)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.ID != "1*" {
		t.Errorf("expected id '1*', got %q", rec.ID)
	}
	if rec.Done != "100%" {
		t.Errorf("expected done '100%%', got %q", rec.Done)
	}
	if rec.Have != "1.05" {
		t.Errorf("expected have '1.05' (unit split off), got %q", rec.Have)
	}
	if rec.ETA != "GB" {
		t.Errorf("expected eta 'GB' (shifted unit), got %q", rec.ETA)
	}
	if rec.Up != "Done" {
		t.Errorf("expected up 'Done' (shifted), got %q", rec.Up)
	}
	if rec.Status != "0.00" {
		t.Errorf("expected status '0.00' (shifted), got %q", rec.Status)
	}
	if rec.Name != "Idle         Example.torrent" {
		t.Errorf("expected name to keep the remainder verbatim, got %q", rec.Name)
	}
}

func TestParseListing_NamePreservesInternalSpacing(t *testing.T) {
	raw := strings.Join([]string{
		"ID Done Have ETA Up Down Ratio Status Name",
		"2 50% 700MB 2h 1.0 2.0 0.50 Up&Down My Show S01E02  (1080p).mkv",
		"Sum: 1 torrent",
	}, "\n")

	records := ParseListing(raw)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].Name; got != "My Show S01E02  (1080p).mkv" {
		t.Errorf("expected name with internal spacing intact, got %q", got)
	}
}

func TestParseListing_DropsShortLines(t *testing.T) {
	raw := strings.Join([]string{
		"ID Done Have ETA Up Down Ratio Status Name",
		"1 100% 1.05GB Done 0.0 0.0 0.00 Idle First.torrent",
		"this row is broken",
		"2 40% 300MB 1h 5.0 9.0 0.10 Downloading Second.torrent",
		"Sum: 2 torrents",
	}, "\n")

	records := ParseListing(raw)
	if len(records) != 2 {
		t.Fatalf("expected short line to be dropped silently, got %d records", len(records))
	}
	if records[0].Name != "First.torrent" || records[1].Name != "Second.torrent" {
		t.Errorf("expected remaining rows in input order, got %q then %q", records[0].Name, records[1].Name)
	}
}

func TestParseListing_PreservesOrder(t *testing.T) {
	raw := strings.Join([]string{
		"ID Done Have ETA Up Down Ratio Status Name",
		"3 10% 10MB 9h 0.1 0.9 0.01 Downloading c.torrent",
		"1 99% 90MB 1m 0.2 0.8 0.02 Seeding a.torrent",
		"2 50% 50MB 5h 0.3 0.7 0.03 Idle b.torrent",
		"Sum: 3 torrents",
	}, "\n")

	records := ParseListing(raw)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	want := []string{"3", "1", "2"}
	for i, id := range want {
		if records[i].ID != id {
			t.Errorf("expected record %d to have id %q, got %q", i, id, records[i].ID)
		}
	}
}

func TestParseListing_CRLFInput(t *testing.T) {
	raw := "ID Done Have ETA Up Down Ratio Status Name\r\n" +
		"1 100% 1.05GB Done 0.0 0.0 0.00 Idle Example.torrent\r\n" +
		"Sum: 1 torrent"

	records := ParseListing(raw)
	if len(records) != 1 {
		t.Fatalf("expected 1 record from CRLF input, got %d", len(records))
	}
	if records[0].Name != "Example.torrent" {
		t.Errorf("expected carriage return to be stripped, got %q", records[0].Name)
	}
}

// TestParseListing_Reparse checks that rebuilding the table from parsed rows
// and parsing again yields the same record count.
func TestParseListing_Reparse(t *testing.T) {
	raw := strings.Join([]string{
		"ID Done Have ETA Up Down Ratio Status Name",
		"1 100% 1.05GB Done 0.0 0.0 0.00 Idle First.torrent",
		"2 40% 300MB 1h 5.0 9.0 0.10 Downloading Second One.torrent",
		"Sum: 2 torrents",
	}, "\n")

	first := ParseListing(raw)
	if len(first) != 2 {
		t.Fatalf("expected 2 records on first parse, got %d", len(first))
	}

	lines := []string{"ID Done Have ETA Up Down Ratio Status Name"}
	for _, rec := range first {
		lines = append(lines, strings.Join([]string{
			rec.ID, rec.Done, rec.Have, rec.ETA, rec.Up, rec.Down, rec.Ratio, rec.Status, rec.Name,
		}, " "))
	}
	lines = append(lines, "Sum: 2 torrents")

	second := ParseListing(strings.Join(lines, "\n"))
	if len(second) != len(first) {
		t.Fatalf("expected reparse to keep %d records, got %d", len(first), len(second))
	}
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("record %d changed across reparse: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSplitColumns(t *testing.T) {
	tests := []struct {
		name string
		line string
		n    int
		want []string
	}{
		{
			name: "fewer tokens than cap",
			line: "a b c",
			n:    9,
			want: []string{"a", "b", "c"},
		},
		{
			name: "exactly cap",
			line: "a b c",
			n:    3,
			want: []string{"a", "b", "c"},
		},
		{
			name: "remainder absorbed verbatim",
			line: "a b c  d   e",
			n:    3,
			want: []string{"a", "b", "c  d   e"},
		},
		{
			name: "leading and trailing whitespace",
			line: "   a\tb   ",
			n:    3,
			want: []string{"a", "b"},
		},
		{
			name: "empty line",
			line: "",
			n:    9,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitColumns(tt.line, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d (%q)", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}
