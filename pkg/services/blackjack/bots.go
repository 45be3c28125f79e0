package blackjack

import "github.com/fintechx/casino/pkg/random"

// Bot bets are drawn uniformly from [50, 549]
const (
	botBetBase  = 50
	botBetRange = 500
)

var botNames = []string{
	"Lucas", "Ana", "Diego", "Sofía", "Max",
	"Valentina", "Leo", "Camila", "Mateo", "Isabella",
}

// Table chatter shown next to bot seats as they act
var chatPhrases = map[string][]string{
	"HIT":   {"Otra.", "Voy.", "Una más.", "Arriesgo.", "Dame."},
	"STAND": {"Me quedo.", "Suficiente.", "Ahí.", "Bien.", "Planto."},
	"BUST":  {"Bust.", "Mal.", "Pasé.", "Rayos.", "Fuera."},
	"WIN":   {"¡Bien!", "Gané.", "Suerte.", "Vamos.", "Yes!"},
	"LOSE":  {"Perdí.", "Cerca.", "Dealer gana.", "Mal.", "Uff."},
}

func randomPhrase(src random.Source, kind string) string {
	phrases := chatPhrases[kind]
	return phrases[src.Intn(len(phrases))]
}

func pickBotNames(src random.Source, count int) []string {
	perm := src.Perm(len(botNames))
	names := make([]string, count)
	for i := 0; i < count; i++ {
		names[i] = botNames[perm[i]]
	}
	return names
}

func botBet(src random.Source) float64 {
	return float64(botBetBase + src.Intn(botBetRange))
}
