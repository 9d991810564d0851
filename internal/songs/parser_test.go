package songs

import (
	"reflect"
	"testing"
)

const sampleSong = `\startsong
\stitle{Chaiyya Chaiyya}%
\film{Dil Se}%
\year{1998}%
\starring{Shah Rukh Khan, Malaika Arora}%
\singer{Sukhwinder Singh, Sapna Awasthi}%
\music{A. R. Rahman}%
\lyrics{Gulzar}%
\endsong
`

func TestParse(t *testing.T) {
	rec := Parse(42, sampleSong)

	if rec.ID != 42 {
		t.Errorf("ID = %d, want 42", rec.ID)
	}
	if rec.Film == nil || *rec.Film != "Dil Se" {
		t.Errorf("Film = %v, want Dil Se", rec.Film)
	}
	if rec.Year == nil || *rec.Year != 1998 {
		t.Errorf("Year = %v, want 1998", rec.Year)
	}

	want := []string{
		"A. R. Rahman",
		"Gulzar",
		"Malaika Arora",
		"Sapna Awasthi",
		"Shah Rukh Khan",
		"Sukhwinder Singh",
	}
	if !reflect.DeepEqual(rec.People, want) {
		t.Errorf("People = %v, want %v", rec.People, want)
	}
}

func TestParseMissingFields(t *testing.T) {
	rec := Parse(7, `\stitle{Some Song}%`)

	if rec.Film != nil {
		t.Errorf("Film = %v, want nil", rec.Film)
	}
	if rec.Year != nil {
		t.Errorf("Year = %v, want nil", rec.Year)
	}
	if len(rec.People) != 0 {
		t.Errorf("People = %v, want empty", rec.People)
	}
}

func TestParseNonDigitYear(t *testing.T) {
	tests := []struct {
		name string
		year string
	}{
		{"decade", "1990s"},
		{"range", "1955-56"},
		{"negative", "-1990"},
		{"words", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Parse(1, `\film{X}%`+"\n"+`\year{`+tt.year+`}%`)
			if rec.Year != nil {
				t.Errorf("Year = %v, want nil for %q", rec.Year, tt.year)
			}
		})
	}
}

func TestParseDeduplicatesPeople(t *testing.T) {
	text := `\singer{Kishore Kumar}%
\music{Kishore Kumar}%`

	rec := Parse(1, text)
	if !reflect.DeepEqual(rec.People, []string{"Kishore Kumar"}) {
		t.Errorf("People = %v, want [Kishore Kumar]", rec.People)
	}
}

func TestParseTrimsNames(t *testing.T) {
	rec := Parse(1, `\starring{ Rekha ,  Amitabh Bachchan , }%`)

	want := []string{"Amitabh Bachchan", "Rekha"}
	if !reflect.DeepEqual(rec.People, want) {
		t.Errorf("People = %v, want %v", rec.People, want)
	}
}
