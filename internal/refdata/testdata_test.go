package refdata

import "testing/fstest"

const testQuestions = `[
	{"id": 1, "D": "Direto", "I": "Alegre", "S": "Calmo", "C": "Exato"},
	{"id": 2, "D": "Ousado", "I": "Popular", "S": "Leal", "C": "Formal"}
]`

const testDescriptions = `{
	"D": {"title": "Dominância", "development_areas": ["Ouvir mais"]},
	"I": {"title": "Influência"},
	"S": {"title": "Estabilidade"},
	"C": {"title": "Conformidade"}
}`

const testGeneralPrimary = `{
	"D": {"high": {"description": "Alta dominância"}},
	"I": {"moderate": {"description": "Influência moderada"}}
}`

const testGeneralSecondary = `{
	"D_high": {
		"I": "Texto curto",
		"C": {"description": "Texto longo", "motivation": "Qualidade"}
	}
}`

const testProfessionalPrimary = `
D:
  high:
    work_style: Orientado a resultados
`

const testProfessionalSecondary = `
D_high:
  I:
    work_style: Mobiliza a equipe
`

// testFS returns a complete, valid reference data filesystem.
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"questions.json":              {Data: []byte(testQuestions)},
		"descriptions.json":           {Data: []byte(testDescriptions)},
		"general_primary.json":        {Data: []byte(testGeneralPrimary)},
		"general_secondary.json":      {Data: []byte(testGeneralSecondary)},
		"professional_primary.yaml":   {Data: []byte(testProfessionalPrimary)},
		"professional_secondary.yaml": {Data: []byte(testProfessionalSecondary)},
	}
}
