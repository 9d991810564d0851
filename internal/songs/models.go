package songs

// Record represents the metadata extracted from a single Giitaayan song file.
// Film and Year are nil when the source file carries no film or year line.
type Record struct {
	// ID is the sequential source file identifier (<id>.isb.txt).
	ID int `json:"id" parquet:"id"`

	Film *string `json:"film" parquet:"film,optional"`
	Year *int    `json:"year" parquet:"year,optional"`

	// People holds everyone credited on the song (actors, singers,
	// composers, lyricists), sorted and deduplicated.
	People []string `json:"people" parquet:"people,list"`
}

// FilmTitle returns the film title or "" when the record has none.
func (r Record) FilmTitle() string {
	if r.Film == nil {
		return ""
	}
	return *r.Film
}
