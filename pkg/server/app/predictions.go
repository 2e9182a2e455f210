/* Copyright 2025 Airavoto Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package app

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
)

// Heuristic forecasts. Maintenance risk follows fixed usage thresholds;
// traffic follows a static time-of-day profile with a weekend boost.

// MaintenanceMetrics are the usage counters behind one prediction
type MaintenanceMetrics struct {
	UsageHours               float64 `json:"usageHours"`
	TotalSessions            int     `json:"totalSessions"`
	IssuesReported           int     `json:"issuesReported"`
	DaysSinceLastMaintenance *int    `json:"daysSinceLastMaintenance"`
}

// MaintenancePrediction is the risk assessment for one seat
type MaintenancePrediction struct {
	Category                      string             `json:"category"`
	SeatName                      string             `json:"seatName"`
	RiskLevel                     string             `json:"riskLevel"`
	RecommendedAction             string             `json:"recommendedAction"`
	EstimatedDaysUntilMaintenance int                `json:"estimatedDaysUntilMaintenance"`
	Reasoning                     string             `json:"reasoning"`
	Metrics                       MaintenanceMetrics `json:"metrics"`
}

// MaintenanceSummary aggregates risk counts across all seats
type MaintenanceSummary struct {
	HighRiskDevices    int      `json:"highRiskDevices"`
	MediumRiskDevices  int      `json:"mediumRiskDevices"`
	LowRiskDevices     int      `json:"lowRiskDevices"`
	TotalDevices       int      `json:"totalDevices"`
	RecommendedActions []string `json:"recommendedActions"`
}

// MaintenanceReport is the full maintenance prediction payload
type MaintenanceReport struct {
	Predictions []MaintenancePrediction `json:"predictions"`
	Summary     MaintenanceSummary      `json:"summary"`
	GeneratedAt string                  `json:"generatedAt"`
}

// GetMaintenancePredictions assesses every named seat against its usage
// counters. Seats without a maintenance row count as fresh devices.
func (a *App) GetMaintenancePredictions() (MaintenanceReport, error) {
	maintenance := []database.DeviceMaintenance{}
	if err := a.DB.Find(&maintenance).Error; err != nil {
		return MaintenanceReport{}, pkgErrors.Wrap(err, "finding device maintenance")
	}

	configs := []database.DeviceConfig{}
	if err := a.DB.Find(&configs).Error; err != nil {
		return MaintenanceReport{}, pkgErrors.Wrap(err, "finding device configs")
	}

	bySeat := map[string]database.DeviceMaintenance{}
	for _, m := range maintenance {
		bySeat[m.SeatName] = m
	}

	now := a.Clock.Now()
	predictions := []MaintenancePrediction{}
	summary := MaintenanceSummary{RecommendedActions: []string{}}
	seenActions := map[string]bool{}

	for _, cfg := range configs {
		names := []string{}
		if err := json.Unmarshal([]byte(cfg.Seats), &names); err != nil {
			continue
		}

		for _, seatName := range names {
			device := bySeat[seatName]

			var daysSince *int
			if device.LastMaintenanceDate != nil {
				d := int(now.Sub(time.UnixMilli(*device.LastMaintenanceDate)).Hours() / 24)
				daysSince = &d
			}

			usageHours := device.TotalUsageHours
			issues := device.IssuesReported

			riskLevel := "low"
			action := "No action needed"
			estimatedDays := 90
			reasoning := "Device is operating normally with low usage."

			switch {
			case usageHours > 1000 || issues > 5:
				riskLevel = "high"
				action = "Schedule immediate maintenance check"
				estimatedDays = 7
				reasoning = fmt.Sprintf("High usage (%gh) and/or multiple issues reported (%d). Immediate attention recommended.", usageHours, issues)
				summary.HighRiskDevices++
			case usageHours > 500 || issues > 2:
				riskLevel = "medium"
				action = "Plan maintenance within 2 weeks"
				estimatedDays = 14
				reasoning = fmt.Sprintf("Moderate usage (%gh) with some issues. Preventive maintenance recommended.", usageHours)
				summary.MediumRiskDevices++
			default:
				summary.LowRiskDevices++
			}

			if riskLevel != "low" && !seenActions[action] {
				seenActions[action] = true
				summary.RecommendedActions = append(summary.RecommendedActions, action)
			}

			predictions = append(predictions, MaintenancePrediction{
				Category:                      cfg.Category,
				SeatName:                      seatName,
				RiskLevel:                     riskLevel,
				RecommendedAction:             action,
				EstimatedDaysUntilMaintenance: estimatedDays,
				Reasoning:                     reasoning,
				Metrics: MaintenanceMetrics{
					UsageHours:               usageHours,
					TotalSessions:            device.TotalSessions,
					IssuesReported:           issues,
					DaysSinceLastMaintenance: daysSince,
				},
			})
		}
	}

	summary.TotalDevices = len(predictions)

	return MaintenanceReport{
		Predictions: predictions,
		Summary:     summary,
		GeneratedAt: now.Format(time.RFC3339),
	}, nil
}

// TrafficPrediction is the expected visitor count for one hour
type TrafficPrediction struct {
	Hour              string `json:"hour"`
	PredictedVisitors int    `json:"predictedVisitors"`
	Confidence        string `json:"confidence"`
}

// TrafficSummary aggregates the daily forecast
type TrafficSummary struct {
	PeakHour               string   `json:"peakHour"`
	PeakVisitors           int      `json:"peakVisitors"`
	TotalPredictedVisitors int      `json:"totalPredictedVisitors"`
	AverageVisitors        int      `json:"averageVisitors"`
	Insights               []string `json:"insights"`
}

// TrafficReport is the full traffic prediction payload
type TrafficReport struct {
	Predictions []TrafficPrediction `json:"predictions"`
	Summary     TrafficSummary      `json:"summary"`
	GeneratedAt string              `json:"generatedAt"`
}

// GetTrafficPredictions forecasts hourly visitors for today. Evening
// hours carry the highest volume and confidence; weekends run 30% above
// the weekday profile.
func (a *App) GetTrafficPredictions() TrafficReport {
	now := a.Clock.Now()
	weekend := now.Weekday() == time.Sunday || now.Weekday() == time.Saturday

	predictions := []TrafficPrediction{}
	peakHour := "18:00"
	peakVisitors := 0
	totalVisitors := 0

	for hour := 0; hour < 24; hour++ {
		visitors := 5
		switch {
		case hour >= 16 && hour <= 22:
			visitors = 15 + rand.Intn(5)
		case hour >= 10 && hour <= 15:
			visitors = 8 + rand.Intn(3)
		case hour >= 23 || hour <= 6:
			visitors = 2
		}

		if weekend {
			visitors = int(math.Round(float64(visitors) * 1.3))
		}

		confidence := "medium"
		if hour >= 16 && hour <= 20 {
			confidence = "high"
		} else if hour >= 23 || hour <= 8 {
			confidence = "low"
		}

		if visitors > peakVisitors {
			peakVisitors = visitors
			peakHour = fmt.Sprintf("%02d:00", hour)
		}
		totalVisitors += visitors

		predictions = append(predictions, TrafficPrediction{
			Hour:              fmt.Sprintf("%02d:00", hour),
			PredictedVisitors: visitors,
			Confidence:        confidence,
		})
	}

	insights := []string{}
	if weekend {
		insights = append(insights, "Weekend traffic expected to be 30% higher than weekdays")
	}
	insights = append(insights,
		fmt.Sprintf("Peak traffic expected around %s with approximately %d visitors", peakHour, peakVisitors),
		"Consider additional staffing during evening hours (4 PM - 10 PM)")

	return TrafficReport{
		Predictions: predictions,
		Summary: TrafficSummary{
			PeakHour:               peakHour,
			PeakVisitors:           peakVisitors,
			TotalPredictedVisitors: totalVisitors,
			AverageVisitors:        int(math.Round(float64(totalVisitors) / 24)),
			Insights:               insights,
		},
		GeneratedAt: now.Format(time.RFC3339),
	}
}
