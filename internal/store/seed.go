package store

import (
	"time"

	"github.com/justintdct/CineVault/cinevault-go/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedContent returns the fixed launch catalog. Ids are stable; the stats
// engine derives everything else from the metadata below.
func SeedContent() []model.Content {
	return []model.Content{
		{
			ID:            "sombras-de-acero",
			Type:          model.TypeMovie,
			Title:         "Sombras de Acero",
			Description:   "Un exagente de inteligencia es arrastrado de vuelta al servicio cuando una red criminal amenaza con desatar el caos en tres continentes.",
			Category:      "Acción",
			QualityRating: 88,
			HypeLevel:     92,
			ReleaseDate:   date(2026, time.August, 14),
			Director:      "Carlos Mendieta",
			Cast:          []string{"Raúl Ortega", "Lucía Ferrer", "Andrés Palacios"},
			Production:    "Estudios Meridiano",
			PosterURL:     "/posters/sombras-de-acero.jpg",
			HeroImageURL:  "/heroes/sombras-de-acero.jpg",
			Duration:      "2h 14min",
		},
		{
			ID:            "el-jardin-de-cristal",
			Type:          model.TypeSeries,
			Title:         "El Jardín de Cristal",
			Description:   "Tres generaciones de una familia vinícola enfrentan secretos enterrados bajo los viñedos que heredaron.",
			Category:      "Drama",
			QualityRating: 93,
			HypeLevel:     78,
			ReleaseDate:   date(2025, time.March, 2),
			Director:      "Elena Garrido",
			Cast:          []string{"Marta Cadenas", "Joaquín Ribera", "Inés Duval"},
			Production:    "Cadena Austral",
			PosterURL:     "/posters/el-jardin-de-cristal.jpg",
			Seasons:       3,
		},
		{
			ID:            "orbita-perdida",
			Type:          model.TypeMovie,
			Title:         "Órbita Perdida",
			Description:   "La tripulación de una estación minera en Europa pierde contacto con la Tierra y descubre que no está sola.",
			Category:      "Ciencia Ficción",
			QualityRating: 91,
			HypeLevel:     95,
			ReleaseDate:   date(2026, time.August, 25),
			Director:      "Tomás Urquiza",
			Cast:          []string{"Daniela Roca", "Iván Sepúlveda", "Nora Estévez"},
			Production:    "Nébula Films",
			PosterURL:     "/posters/orbita-perdida.jpg",
			HeroImageURL:  "/heroes/orbita-perdida.jpg",
			Duration:      "2h 28min",
		},
		{
			ID:            "risas-a-domicilio",
			Type:          model.TypeSeries,
			Title:         "Risas a Domicilio",
			Description:   "Un repartidor convertido en comediante improvisa monólogos en cada entrega, sin saber que lo están grabando.",
			Category:      "Comedia",
			QualityRating: 74,
			HypeLevel:     61,
			ReleaseDate:   date(2024, time.November, 8),
			Director:      "Paco Jiménez",
			Cast:          []string{"Chema Robles", "Valentina Osorio"},
			Production:    "Farándula Studios",
			PosterURL:     "/posters/risas-a-domicilio.jpg",
			Seasons:       2,
		},
		{
			ID:            "la-casa-del-paramo",
			Type:          model.TypeMovie,
			Title:         "La Casa del Páramo",
			Description:   "Una restauradora de arte acepta catalogar la colección de una mansión aislada donde los retratos no siempre miran al mismo sitio.",
			Category:      "Terror",
			QualityRating: 82,
			HypeLevel:     85,
			ReleaseDate:   date(2025, time.October, 31),
			Director:      "Sofía Lezama",
			Cast:          []string{"Clara Mencía", "Bruno Alarcón", "Teresa Vidal"},
			Production:    "Umbral Producciones",
			PosterURL:     "/posters/la-casa-del-paramo.jpg",
			Duration:      "1h 47min",
		},
		{
			ID:            "cronicas-de-ambar",
			Type:          model.TypeSeries,
			Title:         "Crónicas de Ámbar",
			Description:   "En un reino donde la magia se extrae de resina fósil, una cartógrafa traza el mapa que todos quieren quemar.",
			Category:      "Fantasía",
			QualityRating: 89,
			HypeLevel:     88,
			ReleaseDate:   date(2026, time.February, 20),
			Director:      "Hernán Bastos",
			Cast:          []string{"Aitana Coronel", "Diego Malvido", "Rocío Antúnez", "Pau Serrat"},
			Production:    "Nébula Films",
			PosterURL:     "/posters/cronicas-de-ambar.jpg",
			HeroImageURL:  "/heroes/cronicas-de-ambar.jpg",
			Seasons:       2,
		},
		{
			ID:            "cartas-sin-remite",
			Type:          model.TypeMovie,
			Title:         "Cartas sin Remite",
			Description:   "Una bibliotecaria responde cartas de amor dirigidas a desconocidos hasta que una de ellas la nombra a ella.",
			Category:      "Romance",
			QualityRating: 77,
			HypeLevel:     54,
			ReleaseDate:   date(2024, time.February, 14),
			Director:      "Julia Navascués",
			Cast:          []string{"Emma Lozano", "Gael Quintana"},
			Production:    "Cadena Austral",
			PosterURL:     "/posters/cartas-sin-remite.jpg",
			Duration:      "1h 52min",
		},
		{
			ID:            "el-caso-miralles",
			Type:          model.TypeSeries,
			Title:         "El Caso Miralles",
			Description:   "Veinte años después de un veredicto firme, una periodista reabre el expediente que condenó al hombre equivocado.",
			Category:      "Misterio",
			QualityRating: 95,
			HypeLevel:     82,
			ReleaseDate:   date(2025, time.September, 12),
			Director:      "Óscar Llorente",
			Cast:          []string{"Carmen Balaunde", "Rodrigo Ferrán", "Silvia Monreal"},
			Production:    "Estudios Meridiano",
			PosterURL:     "/posters/el-caso-miralles.jpg",
			Seasons:       1,
		},
		{
			ID:            "doce-horas",
			Type:          model.TypeMovie,
			Title:         "Doce Horas",
			Description:   "Un negociador tiene media jornada para evitar que el secuestro de un tren de cercanías termine en tragedia.",
			Category:      "Thriller",
			QualityRating: 86,
			HypeLevel:     71,
			ReleaseDate:   date(2025, time.June, 6),
			Director:      "Marcos Izaguirre",
			Cast:          []string{"Pablo Cifuentes", "Leonor Ávila", "Samuel Berrocal"},
			Production:    "Umbral Producciones",
			PosterURL:     "/posters/doce-horas.jpg",
			Duration:      "1h 58min",
		},
		{
			ID:            "rumbo-al-sur",
			Type:          model.TypeMovie,
			Title:         "Rumbo al Sur",
			Description:   "Dos hermanos distanciados cruzan la Patagonia en una avioneta heredada, con una urna y muchas cuentas pendientes.",
			Category:      "Aventura",
			QualityRating: 80,
			HypeLevel:     66,
			ReleaseDate:   date(2024, time.July, 19),
			Director:      "Renata Quiroga",
			Cast:          []string{"Martín Aramburu", "Félix Aramburu"},
			Production:    "Farándula Studios",
			PosterURL:     "/posters/rumbo-al-sur.jpg",
			Duration:      "2h 05min",
		},
		{
			ID:            "codigo-albatros",
			Type:          model.TypeSeries,
			Title:         "Código Albatros",
			Description:   "Una unidad de analistas rastrea una filtración que parece venir de dentro del propio servicio.",
			Category:      "Thriller",
			QualityRating: 92,
			HypeLevel:     97,
			ReleaseDate:   date(2026, time.August, 21),
			Director:      "Beatriz Montalvo",
			Cast:          []string{"Hugo Lasarte", "Ariadna Coloma", "Víctor Senra"},
			Production:    "Nébula Films",
			PosterURL:     "/posters/codigo-albatros.jpg",
			HeroImageURL:  "/heroes/codigo-albatros.jpg",
			Seasons:       1,
		},
		{
			ID:            "la-ultima-funcion",
			Type:          model.TypeMovie,
			Title:         "La Última Función",
			Description:   "El proyeccionista de un cine condenado a demolición programa una última sesión que el barrio no olvidará.",
			Category:      "Drama",
			QualityRating: 84,
			HypeLevel:     49,
			ReleaseDate:   date(2023, time.December, 1),
			Director:      "Ignacio Peralta",
			Cast:          []string{"Amparo Gisbert", "Lucas Mondragón", "Elisa Fontcuberta"},
			Production:    "Cadena Austral",
			PosterURL:     "/posters/la-ultima-funcion.jpg",
			Duration:      "1h 41min",
		},
	}
}
