package resume

import "context"

// TextSource yields the résumé text used for skill detection.
type TextSource interface {
	Text(ctx context.Context, u Upload, data []byte) (string, error)
}

// SimulatedText ignores the document and returns a fixed sample résumé.
// Text is not extracted from uploaded PDFs.
type SimulatedText struct{}

func (SimulatedText) Text(context.Context, Upload, []byte) (string, error) {
	return simulatedResume, nil
}

const simulatedResume = `
DÉVELOPPEUR FULLSTACK - AMADOU SOW
===================================

EXPÉRIENCE PROFESSIONNELLE:
- Développeur Fullstack - 3 ans
- Création d'applications web avec JavaScript, React, Node.js
- Développement d'APIs REST avec Express.js
- Gestion de bases de données MongoDB et MySQL

COMPÉTENCES TECHNIQUES:
• Langages: JavaScript, Python, Java, HTML5, CSS3
• Frameworks: React, Node.js, Express, Spring Boot
• Bases de données: MongoDB, MySQL, PostgreSQL
• Outils: Git, Docker, AWS, Linux, REST APIs

FORMATION:
- Master en Informatique
- Licence en Développement Web
`
