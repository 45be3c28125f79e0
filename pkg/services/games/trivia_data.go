package games

// TriviaCategories lists the six wheel segments in wheel order
var TriviaCategories = [triviaSegments]TriviaCategory{
	{ID: "GEO", Name: "Geografía"},
	{ID: "HIST", Name: "Historia"},
	{ID: "ART", Name: "Arte"},
	{ID: "SCI", Name: "Ciencia"},
	{ID: "ENT", Name: "Entretenimiento"},
	{ID: "SPORT", Name: "Deportes"},
}

var triviaBank = map[string][]TriviaQuestion{
	"GEO": {
		{Prompt: "¿Cuál es la capital de Australia?", Options: [4]string{"Sydney", "Melbourne", "Canberra", "Perth"}, Answer: 2},
		{Prompt: "¿En qué continente está Egipto?", Options: [4]string{"Asia", "África", "Europa", "Oceanía"}, Answer: 1},
		{Prompt: "¿Cuál es el río más largo del mundo?", Options: [4]string{"Nilo", "Amazonas", "Yangtsé", "Misisipi"}, Answer: 1},
	},
	"HIST": {
		{Prompt: "¿En qué año llegó Colón a América?", Options: [4]string{"1492", "1500", "1485", "1510"}, Answer: 0},
		{Prompt: "¿Quién fue el primer presidente de EE.UU.?", Options: [4]string{"Lincoln", "Washington", "Jefferson", "Adams"}, Answer: 1},
	},
	"ART": {
		{Prompt: "¿Quién pintó 'La Noche Estrellada'?", Options: [4]string{"Picasso", "Monet", "Van Gogh", "Dalí"}, Answer: 2},
		{Prompt: "¿Dónde está el Museo del Prado?", Options: [4]string{"París", "Londres", "Madrid", "Roma"}, Answer: 2},
	},
	"SCI": {
		{Prompt: "¿Cuál es el símbolo químico del Hierro?", Options: [4]string{"Fe", "Hi", "Ir", "In"}, Answer: 0},
		{Prompt: "¿Qué planeta es conocido como el Planeta Rojo?", Options: [4]string{"Venus", "Marte", "Júpiter", "Saturno"}, Answer: 1},
	},
	"ENT": {
		{Prompt: "¿Quién interpretó a Jack en Titanic?", Options: [4]string{"Brad Pitt", "Tom Cruise", "Leonardo DiCaprio", "Johnny Depp"}, Answer: 2},
		{Prompt: "¿Qué serie tiene dragones y tronos?", Options: [4]string{"Vikings", "Game of Thrones", "The Witcher", "Merlin"}, Answer: 1},
	},
	"SPORT": {
		{Prompt: "¿Cuántos jugadores tiene un equipo de fútbol?", Options: [4]string{"9", "10", "11", "12"}, Answer: 2},
		{Prompt: "¿En qué deporte se usa una raqueta?", Options: [4]string{"Fútbol", "Tenis", "Baloncesto", "Natación"}, Answer: 1},
	},
}
