package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/wanderlust-rentals/rental-service/internal/models"
)

const popularFeatureLimit = 5

// Report is the statistical rollup over all packages.
type Report struct {
	Summary                 ReportSummary     `json:"summary"`
	PriceDistribution       PriceDistribution `json:"priceDistribution"`
	PopularFeatures         []FeatureCount    `json:"popularFeatures"`
	PackageTypeDistribution []TypeCount       `json:"packageTypeDistribution"`
	Packages                []PackageSummary  `json:"packages"`
}

// ReportSummary holds the headline figures.
type ReportSummary struct {
	TotalPackages int    `json:"totalPackages"`
	PackageTypes  int    `json:"packageTypes"`
	AvgPrice      string `json:"avgPrice"`
	DateGenerated string `json:"dateGenerated"`
}

// PriceDistribution counts packages per daily price bucket.
type PriceDistribution struct {
	UpTo50   int `json:"0-50"`
	From51   int `json:"51-100"`
	From101  int `json:"101-150"`
	From151  int `json:"151-200"`
	Above200 int `json:"200+"`
}

// FeatureCount is how many packages enable a feature.
type FeatureCount struct {
	Feature string `json:"feature"`
	Count   int    `json:"count"`
}

// TypeCount is how many packages have a type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// PackageSummary is the per-package report row. Feature maps hold enabled flags only.
type PackageSummary struct {
	PackageID                    int64           `json:"package_id"`
	PackageName                  string          `json:"package_name"`
	PackageType                  string          `json:"package_type"`
	Duration                     string          `json:"duration"`
	PricePerDay                  float64         `json:"price_per_day"`
	SeatingCapacity              int             `json:"seating_capacity"`
	LuggageCapacity              int             `json:"luggage_capacity"`
	AdditionalFeatures           map[string]bool `json:"additional_features"`
	SafetySecurityFeatures       map[string]bool `json:"safety_security_features"`
	CustomAdditionalFeatures     []string        `json:"custom_additional_features"`
	CustomSafetySecurityFeatures []string        `json:"custom_safety_security_features"`
}

// BuildReport aggregates pkgs as of now.
func BuildReport(pkgs []models.Package, now time.Time) Report {
	report := Report{
		PopularFeatures:         []FeatureCount{},
		PackageTypeDistribution: []TypeCount{},
		Packages:                make([]PackageSummary, 0, len(pkgs)),
	}

	var total float64
	typeIndex := make(map[string]int)
	featureCounts := make(map[string]int)

	for _, pkg := range pkgs {
		total += pkg.PricePerDay
		report.PriceDistribution.add(pkg.PricePerDay)

		if i, ok := typeIndex[pkg.PackageType]; ok {
			report.PackageTypeDistribution[i].Count++
		} else {
			typeIndex[pkg.PackageType] = len(report.PackageTypeDistribution)
			report.PackageTypeDistribution = append(report.PackageTypeDistribution, TypeCount{Type: pkg.PackageType, Count: 1})
		}

		additional := enabledFlags(pkg.AdditionalFeatures)
		safety := enabledFlags(pkg.SafetySecurityFeatures)
		for name := range additional {
			featureCounts[name]++
		}
		for name := range safety {
			featureCounts[name]++
		}
		for _, name := range pkg.CustomAdditionalFeatures {
			if name != "" {
				featureCounts[name]++
			}
		}
		for _, name := range pkg.CustomSafetySecurityFeatures {
			if name != "" {
				featureCounts[name]++
			}
		}

		report.Packages = append(report.Packages, summarize(pkg, additional, safety))
	}

	divisor := float64(len(pkgs))
	if divisor == 0 {
		divisor = 1
	}

	report.Summary = ReportSummary{
		TotalPackages: len(pkgs),
		PackageTypes:  len(report.PackageTypeDistribution),
		AvgPrice:      fmt.Sprintf("%.2f", total/divisor),
		DateGenerated: now.UTC().Format(time.RFC3339),
	}
	report.PopularFeatures = topFeatures(featureCounts, popularFeatureLimit)

	return report
}

func (d *PriceDistribution) add(price float64) {
	switch {
	case price <= 50:
		d.UpTo50++
	case price <= 100:
		d.From51++
	case price <= 150:
		d.From101++
	case price <= 200:
		d.From151++
	default:
		d.Above200++
	}
}

func enabledFlags(flags map[string]bool) map[string]bool {
	enabled := make(map[string]bool)
	for name, on := range flags {
		if on {
			enabled[name] = true
		}
	}
	return enabled
}

// topFeatures orders by count descending, then name ascending.
func topFeatures(counts map[string]int, limit int) []FeatureCount {
	features := make([]FeatureCount, 0, len(counts))
	for name, count := range counts {
		features = append(features, FeatureCount{Feature: name, Count: count})
	}

	sort.Slice(features, func(i, j int) bool {
		if features[i].Count != features[j].Count {
			return features[i].Count > features[j].Count
		}
		return features[i].Feature < features[j].Feature
	})

	if len(features) > limit {
		features = features[:limit]
	}
	return features
}

func summarize(pkg models.Package, additional, safety map[string]bool) PackageSummary {
	summary := PackageSummary{
		PackageID:                    pkg.PackageID,
		PackageName:                  pkg.PackageName,
		PackageType:                  pkg.PackageType,
		PricePerDay:                  pkg.PricePerDay,
		SeatingCapacity:              pkg.SeatingCapacity,
		LuggageCapacity:              pkg.LuggageCapacity,
		AdditionalFeatures:           additional,
		SafetySecurityFeatures:       safety,
		CustomAdditionalFeatures:     pkg.CustomAdditionalFeatures,
		CustomSafetySecurityFeatures: pkg.CustomSafetySecurityFeatures,
	}
	if len(pkg.Duration) > 0 {
		summary.Duration = pkg.Duration[0]
	}
	if summary.CustomAdditionalFeatures == nil {
		summary.CustomAdditionalFeatures = []string{}
	}
	if summary.CustomSafetySecurityFeatures == nil {
		summary.CustomSafetySecurityFeatures = []string{}
	}
	return summary
}
