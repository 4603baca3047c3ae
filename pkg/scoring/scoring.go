// Package scoring converts issue lists and metrics into category scores.
// Each score is a deterministic penalty sum subtracted from 100 and clamped
// to [0,100]; a category with no issues scores exactly 100.
package scoring

import (
	"github.com/augur-dev/augur/pkg/metrics"
	"github.com/augur-dev/augur/pkg/models"
)

// Penalty tables per category. Quality additionally charges for high
// complexity and file size.
var (
	securityPenalty = map[models.Severity]float64{
		models.SeverityHigh:   20,
		models.SeverityMedium: 10,
		models.SeverityLow:    5,
	}
	qualityPenalty = map[models.Severity]float64{
		models.SeverityHigh:   15,
		models.SeverityMedium: 8,
		models.SeverityLow:    3,
	}
	performancePenalty = map[models.Severity]float64{
		models.SeverityHigh:   20,
		models.SeverityMedium: 12,
		models.SeverityLow:    5,
	}
)

const (
	complexityThreshold = 10
	maxComplexityCharge = 20
	sizeThreshold       = 500
	maxSizeCharge       = 10
)

// Security scores the security category.
func Security(issues []models.Issue) float64 {
	return categoryScore(issues, models.CategorySecurity, securityPenalty, 0)
}

// Quality scores the quality category, charging extra for cyclomatic
// complexity above 10 and files longer than 500 lines.
func Quality(issues []models.Issue, set metrics.Set) float64 {
	var extra float64
	if c := set.CyclomaticComplexity; c > complexityThreshold {
		extra += min(float64(maxComplexityCharge), float64(c-complexityThreshold))
	}
	if loc := set.LinesOfCode; loc > sizeThreshold {
		extra += min(float64(maxSizeCharge), float64((loc-sizeThreshold)/100))
	}
	return categoryScore(issues, models.CategoryQuality, qualityPenalty, extra)
}

// Performance scores the performance category.
func Performance(issues []models.Issue) float64 {
	return categoryScore(issues, models.CategoryPerformance, performancePenalty, 0)
}

// ForFile computes all three scores for one file.
func ForFile(issues []models.Issue, set metrics.Set) models.Scores {
	return models.Scores{
		Security:    Security(issues),
		Quality:     Quality(issues, set),
		Performance: Performance(issues),
	}
}

func categoryScore(issues []models.Issue, cat models.Category, penalties map[models.Severity]float64, extra float64) float64 {
	total := extra
	for _, issue := range issues {
		if issue.Category == cat {
			total += penalties[issue.Severity]
		}
	}
	return clamp(100 - total)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
