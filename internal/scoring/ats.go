package scoring

import (
	"regexp"
	"strings"
)

var actionVerbPattern = regexp.MustCompile(`\b(led|built|managed|created|improved|developed|designed)\b`)

type atsCheck struct {
	name   string
	weight int
	passes func(content string) bool
}

// atsChecks is evaluated in order; weights sum to 100.
var atsChecks = []atsCheck{
	{name: "Contact info", weight: 15, passes: containsAny("email", "phone")},
	{name: "Summary/objective", weight: 15, passes: containsAny("summary", "objective")},
	{name: "Work experience", weight: 20, passes: containsAny("experience", "work")},
	{name: "Education", weight: 15, passes: containsAny("education", "degree")},
	{name: "Skills", weight: 15, passes: containsAny("skill")},
	{name: "Action verbs", weight: 10, passes: actionVerbPattern.MatchString},
	{name: "No images (ATS-safe)", weight: 10, passes: func(content string) bool {
		return !strings.Contains(content, "image")
	}},
}

func containsAny(needles ...string) func(string) bool {
	return func(content string) bool {
		for _, n := range needles {
			if strings.Contains(content, n) {
				return true
			}
		}
		return false
	}
}

func evaluateATS(assetID, content string) ATSReport {
	lowered := strings.ToLower(content)

	report := ATSReport{
		AssetID:      assetID,
		Checks:       make([]ATSCheckResult, 0, len(atsChecks)),
		Improvements: []string{},
	}
	for _, check := range atsChecks {
		passed := check.passes(lowered)
		report.Checks = append(report.Checks, ATSCheckResult{
			Name:   check.name,
			Passed: passed,
			Weight: check.weight,
		})
		if passed {
			report.ATSScore += check.weight
		} else {
			report.Improvements = append(report.Improvements, "Fix: "+check.name)
		}
	}
	return report
}
