package badge

import (
	"github.com/gobwas/glob"
)

type Kind string

const (
	KindDefault Kind = "default"
	KindSoft    Kind = "soft"
)

// softSkillPatterns match the tags of behavioral, personality and competency
// assessments. "Competenc" covers both "Competency" and "Competencies".
var softSkillPatterns = []glob.Glob{
	glob.MustCompile("*Personality*"),
	glob.MustCompile("*Behavior*"),
	glob.MustCompile("*Competenc*"),
}

// Classify returns the badge kind of the given assessment tag.
func Classify(tag string) Kind {
	for _, p := range softSkillPatterns {
		if p.Match(tag) {
			return KindSoft
		}
	}

	return KindDefault
}

func IsSoft(tag string) bool {
	return Classify(tag) == KindSoft
}
