// Package extract pulls a health score and macro-nutrient quantities out of
// free-form model output. Extraction is best effort: anything not found is
// reported as nil, never as an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	scorePattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:/|out\s+of|üzerinden)\s*10(?:\D|$)`)

	caloriesPattern = labeled(`calories|calorie|kalori|kcal`)
	proteinPattern  = labeled(`proteins|protein`)
	carbsPattern    = labeled(`carbohydrates|carbohydrate|karbonhidrat|carbs|carb|karb`)
	fatPattern      = labeled(`fats|fat|yağ`)
)

// labeled builds "label, optional colons/whitespace, number" for a set of synonyms.
func labeled(labels string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + labels + `)[:\s]*(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)`)
}

// Result holds extracted values. A nil field means no match.
type Result struct {
	HealthScore *float64 `json:"health_score"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
}

// Missing lists the names of fields that were not found.
func (r Result) Missing() []string {
	var out []string
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"health_score", r.HealthScore},
		{"calories", r.Calories},
		{"protein", r.Protein},
		{"carbs", r.Carbs},
		{"fat", r.Fat},
	} {
		if f.v == nil {
			out = append(out, f.name)
		}
	}
	return out
}

// Metrics extracts the score and all four macros.
func Metrics(text string) Result {
	return Result{
		HealthScore: Score(text),
		Calories:    quantity(caloriesPattern, text),
		Protein:     quantity(proteinPattern, text),
		Carbs:       quantity(carbsPattern, text),
		Fat:         quantity(fatPattern, text),
	}
}

// Score returns the first number written as "N/10", "N out of 10" or
// "N üzerinden 10". Out-of-range values are returned as-is.
func Score(text string) *float64 {
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	// decimal comma: "7,5/10"
	return parse(strings.Replace(m[1], ",", ".", 1))
}

// quantity returns the first labeled number; commas are thousands separators here.
func quantity(re *regexp.Regexp, text string) *float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return parse(strings.ReplaceAll(m[1], ",", ""))
}

func parse(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
