package ai

import (
	"fmt"
	"strings"
)

const styleRule = "Do not use asterisks (*) or hash signs (#). Write in professional paragraphs. "

func dailyPrompt(in DailyInput) string {
	var b strings.Builder
	b.WriteString(styleRule)
	b.WriteString("The user is logging today's meals. ")
	fmt.Fprintf(&b, "Morning: %s%s, Afternoon: %s%s, Evening: %s%s. ",
		orNone(in.Morning), feeling(in.Feelings.Morning),
		orNone(in.Afternoon), feeling(in.Feelings.Afternoon),
		orNone(in.Evening), feeling(in.Feelings.Evening))
	b.WriteString("IMPORTANT: start the analysis with the following lines: ")
	b.WriteString("1) the overall HEALTH SCORE for the day (example: '8/10') ")
	b.WriteString("2) estimated TOTAL CALORIES (example: 'Calories: 1850 kcal') ")
	b.WriteString("3) estimated PROTEIN (example: 'Protein: 120g') ")
	b.WriteString("4) estimated CARBOHYDRATE (example: 'Carbohydrate: 220g') ")
	b.WriteString("5) estimated FAT (example: 'Fat: 65g'). ")
	if len(in.History) > 0 {
		fmt.Fprintf(&b, "Take the previous %d days into account:\n", len(in.History))
		for _, d := range in.History {
			fmt.Fprintf(&b, "- %s\n", d.line())
		}
	}
	b.WriteString("Analyse today and propose a complete menu and nutrition strategy for tomorrow.")
	return b.String()
}

func foodPrompt(description string) string {
	return styleRule +
		"You must: " +
		"1) give the food a HEALTH SCORE out of 10 (example: '7/10'). " +
		"2) explain its BENEFICIAL nutrients. " +
		"3) explain its HARMFUL components. " +
		"Input: " + description
}

func photoPrompt() string {
	return styleRule +
		"For the food in the image you must: " +
		"1) give a HEALTH SCORE out of 10 (example: '7/10'). " +
		"2) describe its BENEFICIAL nutrients. " +
		"3) describe its HARMFUL components."
}

func weeklyPrompt(days []DaySummary, stats WeekStats, goals Goals) string {
	goal := goals.Goal
	if strings.TrimSpace(goal) == "" {
		goal = "General health"
	}
	target := goals.DailyCalorieTarget
	if target <= 0 {
		target = 2000
	}

	var b strings.Builder
	b.WriteString(styleRule)
	b.WriteString("Analyse the user's weekly nutrition data.\n\n")
	b.WriteString("Weekly statistics:\n")
	fmt.Fprintf(&b, "- Average health score: %.1f/10\n", stats.AvgHealthScore)
	fmt.Fprintf(&b, "- Total meals: %d\n", stats.TotalMeals)
	fmt.Fprintf(&b, "- Average daily calories: %.1f kcal\n", stats.AvgCalories)
	fmt.Fprintf(&b, "- Total protein: %.1fg\n", stats.TotalProtein)
	fmt.Fprintf(&b, "- Total carbohydrate: %.1fg\n", stats.TotalCarbs)
	fmt.Fprintf(&b, "- Total fat: %.1fg\n\n", stats.TotalFat)
	fmt.Fprintf(&b, "User goal: %s\n", goal)
	fmt.Fprintf(&b, "Daily calorie target: %d kcal\n\n", target)
	if len(days) > 0 {
		b.WriteString("Logged days:\n")
		for _, d := range days {
			fmt.Fprintf(&b, "- %s\n", d.line())
		}
		b.WriteString("\n")
	}
	b.WriteString("Please:\n")
	b.WriteString("1) name the STRENGTHS of the week (achievements, good habits)\n")
	b.WriteString("2) name the POINTS TO WATCH (excesses, deficiencies)\n")
	b.WriteString("3) give CONCRETE SUGGESTIONS for next week\n\n")
	b.WriteString("Keep it short and motivating.")
	return b.String()
}

func (d DaySummary) line() string {
	return fmt.Sprintf("%s: morning %s / afternoon %s / evening %s",
		d.Date, orNone(d.Morning), orNone(d.Afternoon), orNone(d.Evening))
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func feeling(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return " (felt " + s + ")"
}
