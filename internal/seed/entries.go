package seed

import (
	"time"

	mdb "AlmanacSeed/internal/mongo"
)

var gimnasSole = mdb.Location{Latitude: 41.38291533569831, Longitude: 2.169884207359594}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

// Entries returns the ephemeris batch in insertion order. Each call builds a
// new slice.
func Entries() []mdb.EphemerisDoc {
	founding, centenary := gimnasSole, gimnasSole
	return []mdb.EphemerisDoc{
		{
			Date: day(1899, time.November, 29),
			Text: "Joan Gamper juntament amb els suïssos Otto Kunzle i Walter Wild, els anglesos John i William Parsons, " +
				"l'alemany Otto Maier i els catalans Lluís d'Ossó, Bartomeu Terrades, l'aragonès Enric Ducay, Pere Cabot, " +
				"Carles Pujol i Josep Llobet, es reuneixen al Gimnàs Solé per formar una associació que portarà el nom i " +
				"l'escut de la ciutat: el Futbol Club Barcelona.",
			Location: &founding,
		},
		{
			Date: day(1957, time.September, 24),
			Text: "S'inaugura el Camp Nou amb una missa solmne, una desfilada de diversos clubs de Catalunya i un partit " +
				"entre el F.C. Barcelona i una selecció de jugadors de Varsòvia.",
			Location: &mdb.Location{Latitude: 41.3808, Longitude: 2.1228},
		},
		{
			Date:     day(1999, time.November, 29),
			Text:     "El F.C. Barcelona celebra el seu centenari.",
			Location: &centenary,
		},
		{
			Date: time.Date(1950, time.February, 13, 15, 30, 0, 0, time.UTC),
			Text: "test",
		},
	}
}
