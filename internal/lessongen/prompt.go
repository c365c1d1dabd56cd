package lessongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `Je schrijft lesinhoud voor Kosmi, een leerplatform voor Nederlandse basisschoolkinderen. Schrijf altijd in het Nederlands, feitelijk juist en passend bij de leeftijd.`

// levelGuidance describes how content should read for each band of grades.
func levelGuidance(grade int) string {
	switch {
	case grade <= 2:
		return "heel simpel, korte zinnen, concrete voorbeelden"
	case grade <= 4:
		return "iets uitgebreider, begin van lezen"
	case grade <= 6:
		return "meer diepgang, eerste abstracte concepten"
	default:
		return "complexere uitleg, kritisch denken"
	}
}

// Age returns the typical age of a child in the given groep.
func Age(grade int) int {
	return 4 + grade
}

func buildUserMessage(topic string, grade int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Genereer lesinhoud over %q voor een Nederlands kind in groep %d (leeftijd %d jaar).\n", topic, grade, Age(grade))
	fmt.Fprintf(&b, "Niveau: %s.\n", levelGuidance(grade))

	b.WriteString(`
Instructies:
- introText: korte introductie (1-2 zinnen) die voorgelezen wordt.
- coreContent: hoofdtekst in HTML, 2-3 paragrafen.
- depthContent: extra verdieping voor nieuwsgierige kinderen, 1-2 paragrafen.
- reflectionQuestion: een open vraag die nadenken stimuleert.
- pointsBase: 100, pointsDepthBonus: 50, tenzij de les duidelijk zwaarder is.
Gebruik alleen simpele HTML tags zoals <p>, <strong>, <em>.`)

	return b.String()
}
