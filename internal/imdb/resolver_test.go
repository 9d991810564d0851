package imdb

import (
	"errors"
	"strings"
	"testing"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/corpus"
)

const titlesHeader = "tconst\ttitleType\tprimaryTitle\tstartYear"

func titleCorpus(keys ...corpus.TitleKey) corpus.TitleSet {
	set := make(corpus.TitleSet)
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

func resolveTitlesFrom(t *testing.T, tsv string, set corpus.TitleSet) (*Mapping[corpus.TitleKey], Stats) {
	t.Helper()

	mapping, stats, err := Resolve(strings.NewReader(tsv), "title.basics.tsv", set, TitlesSpec())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return mapping, stats
}

func TestResolveMissingColumns(t *testing.T) {
	tsv := "tconst\tprimaryTitle\n"

	_, _, err := Resolve(strings.NewReader(tsv), "title.basics.tsv", titleCorpus(), TitlesSpec())
	if err == nil {
		t.Fatal("expected SchemaError, got nil")
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T: %v", err, err)
	}

	want := []string{"titleType", "startYear"}
	if len(schemaErr.Missing) != len(want) {
		t.Fatalf("missing = %v, want %v", schemaErr.Missing, want)
	}
	for i, col := range want {
		if schemaErr.Missing[i] != col {
			t.Errorf("missing[%d] = %q, want %q", i, schemaErr.Missing[i], col)
		}
	}
}

func TestResolveBasicMatch(t *testing.T) {
	key := corpus.TitleKey{Title: "dil se", Year: 1998, YearKnown: true}
	tsv := titlesHeader + "\n" +
		"tt0146876\tmovie\tDil Se\t1998\n" +
		"tt9999999\tmovie\tSomething Else\t2001\n"

	mapping, stats := resolveTitlesFrom(t, tsv, titleCorpus(key))

	if id, ok := mapping.Get(key); !ok || id != "tt0146876" {
		t.Errorf("Get(%+v) = %q, %v; want tt0146876, true", key, id, ok)
	}
	if stats.Lines != 2 || stats.Matched != 1 || stats.Unmatched != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestResolveLastWriteWins(t *testing.T) {
	key := corpus.TitleKey{Title: "dil se", Year: 1998, YearKnown: true}
	tsv := titlesHeader + "\n" +
		"tt0000001\tmovie\tDil Se\t1998\n" +
		"tt0000002\tmovie\tDil Se\t1998\n"

	mapping, stats := resolveTitlesFrom(t, tsv, titleCorpus(key))

	if id, _ := mapping.Get(key); id != "tt0000002" {
		t.Errorf("expected later row to win, got %q", id)
	}
	if mapping.Len() != 1 {
		t.Errorf("expected 1 resolved key, got %d", mapping.Len())
	}
	// Both rows wrote the key, only one key resolved
	if stats.Matched != 2 {
		t.Errorf("matched = %d, want 2", stats.Matched)
	}
}

func TestResolveNullIdentifierDoesNotErasePriorMatch(t *testing.T) {
	// A \N identifier row is rejected before the map write, so it never
	// overwrites an identifier resolved by an earlier row.
	key := corpus.TitleKey{Title: "dil se", Year: 1998, YearKnown: true}
	tsv := titlesHeader + "\n" +
		"tt0146876\tmovie\tDil Se\t1998\n" +
		`\N` + "\tmovie\tDil Se\t1998\n"

	mapping, stats := resolveTitlesFrom(t, tsv, titleCorpus(key))

	if id, ok := mapping.Get(key); !ok || id != "tt0146876" {
		t.Errorf("expected retained tt0146876, got %q (ok=%v)", id, ok)
	}
	if stats.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", stats.Skipped)
	}
}

func TestResolveNullIdentifierNeverStored(t *testing.T) {
	key := corpus.TitleKey{Title: "dil se", Year: 1998, YearKnown: true}
	tsv := titlesHeader + "\n" +
		`\N` + "\tmovie\tDil Se\t1998\n"

	mapping, stats := resolveTitlesFrom(t, tsv, titleCorpus(key))

	if mapping.Len() != 0 {
		t.Errorf("expected empty mapping, got %d entries", mapping.Len())
	}
	if stats.Unmatched != 1 {
		t.Errorf("unmatched = %d, want 1", stats.Unmatched)
	}
}

func TestResolveUnknownYearIsolation(t *testing.T) {
	tests := []struct {
		name      string
		key       corpus.TitleKey
		row       string
		wantMatch bool
	}{
		{
			name:      "unknown-year key never matches concrete year",
			key:       corpus.TitleKey{Title: "x"},
			row:       "tt0000001\tmovie\tX\t1990",
			wantMatch: false,
		},
		{
			name:      "unknown-year key matches \\N year",
			key:       corpus.TitleKey{Title: "x"},
			row:       "tt0000001\tmovie\tX\t" + `\N`,
			wantMatch: true,
		},
		{
			name:      "concrete-year key never matches \\N year",
			key:       corpus.TitleKey{Title: "x", Year: 1990, YearKnown: true},
			row:       "tt0000001\tmovie\tX\t" + `\N`,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tsv := titlesHeader + "\n" + tt.row + "\n"
			mapping, _ := resolveTitlesFrom(t, tsv, titleCorpus(tt.key))

			_, ok := mapping.Get(tt.key)
			if ok != tt.wantMatch {
				t.Errorf("match = %v, want %v", ok, tt.wantMatch)
			}
		})
	}
}

func TestResolveRowTypeFilter(t *testing.T) {
	key := corpus.TitleKey{Title: "x", Year: 1990, YearKnown: true}
	tsv := titlesHeader + "\n" +
		"tt0000001\ttvSeries\tX\t1990\n"

	mapping, _ := resolveTitlesFrom(t, tsv, titleCorpus(key))

	if mapping.Len() != 0 {
		t.Errorf("tvSeries row must not match, got %d entries", mapping.Len())
	}
}

func TestResolveInvalidYearSkipsRow(t *testing.T) {
	key := corpus.TitleKey{Title: "x", Year: 1990, YearKnown: true}
	tsv := titlesHeader + "\n" +
		"tt0000001\tmovie\tX\tabcd\n" +
		"tt0000002\tmovie\tX\t1990\n"

	mapping, stats := resolveTitlesFrom(t, tsv, titleCorpus(key))

	if id, _ := mapping.Get(key); id != "tt0000002" {
		t.Errorf("expected tt0000002 after skipping bad year, got %q", id)
	}
	if stats.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", stats.Skipped)
	}
}

func TestResolveMalformedRowResilience(t *testing.T) {
	// A line with an extra unescaped tab is dropped; the run continues and
	// the next well-formed line still resolves.
	key := corpus.TitleKey{Title: "x", Year: 1990, YearKnown: true}
	tsv := titlesHeader + "\n" +
		"tt0000001\tmovie\tX\textra\tfield\n" +
		"tt0000002\tmovie\tX\t1990\n"

	mapping, stats := resolveTitlesFrom(t, tsv, titleCorpus(key))

	if id, _ := mapping.Get(key); id != "tt0000002" {
		t.Errorf("expected tt0000002 after malformed line, got %q", id)
	}
	if stats.Lines != 2 || stats.Skipped != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestResolveMappingNeverExceedsCorpus(t *testing.T) {
	key := corpus.TitleKey{Title: "x", Year: 1990, YearKnown: true}
	tsv := titlesHeader + "\n" +
		"tt0000001\tmovie\tX\t1990\n" +
		"tt0000002\tmovie\tX\t1990\n" +
		"tt0000003\tmovie\tY\t1990\n"

	set := titleCorpus(key)
	mapping, stats := resolveTitlesFrom(t, tsv, set)

	if mapping.Len() > len(set) {
		t.Errorf("mapping size %d exceeds corpus size %d", mapping.Len(), len(set))
	}
	if stats.CorpusSize != 1 {
		t.Errorf("corpus size = %d, want 1", stats.CorpusSize)
	}
}

func TestResolveNames(t *testing.T) {
	set := corpus.NameSet{"lata mangeshkar": {}, "a. r. rahman": {}}
	tsv := "nconst\tprimaryName\tbirthYear\n" +
		"nm0003144\tLata Mangeshkar\t1929\n" +
		"nm0006246\tA. R. Rahman\t1967\n" +
		"nm0000001\tFred Astaire\t1899\n"

	mapping, stats, err := Resolve(strings.NewReader(tsv), "name.basics.tsv", set, NamesSpec())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if id, _ := mapping.Get("lata mangeshkar"); id != "nm0003144" {
		t.Errorf("lata mangeshkar = %q, want nm0003144", id)
	}
	if id, _ := mapping.Get("a. r. rahman"); id != "nm0006246" {
		t.Errorf("a. r. rahman = %q, want nm0006246", id)
	}
	if stats.Unmatched != 0 {
		t.Errorf("unmatched = %d, want 0", stats.Unmatched)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	_, _, err := Resolve(strings.NewReader(""), "title.basics.tsv", titleCorpus(), TitlesSpec())
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}
