package services

import (
	"fmt"
	"log"

	"github.com/localnerve/staffdir/internal/config"
	"github.com/localnerve/staffdir/internal/dataset"
	"github.com/localnerve/staffdir/internal/utils"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string         `json:"status"`
	Datasets     map[string]int `json:"datasets"`
	Avatar       string         `json:"avatar"`
	Warnings     []string       `json:"warnings,omitempty"`
	Errors       []string       `json:"errors,omitempty"`
	ErrorMessage string         `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service.
// Load-time warnings and errors degrade the status but never mark the
// service unhealthy: partial datasets still serve. An empty roster is the
// one unhealthy condition, because no directory lookup can succeed.
func HealthCheck(cfg *config.Config, store *dataset.Store) HealthCheckResult {
	result := HealthCheckResult{
		Status:   "healthy",
		Datasets: store.Report.Counts,
		Warnings: store.Report.Warnings,
		Errors:   store.Report.Errors,
	}

	if len(store.Report.Warnings) > 0 || len(store.Report.Errors) > 0 {
		result.Status = "degraded"
		if len(store.Report.Errors) > 0 {
			result.ErrorMessage = store.Report.Errors[0]
		}
		log.Printf("Health check - dataset load reported %d warnings, %d errors",
			len(store.Report.Warnings), len(store.Report.Errors))
	}

	if len(store.Employees) == 0 {
		result.Status = "unhealthy"
		result.ErrorMessage = "employee roster is empty"
		log.Printf("Health check failed - employee roster is empty")
	}

	// Check avatar fallback service connectivity
	if err := utils.PingAvatarService(cfg.AvatarFallbackURL); err != nil {
		if result.Status == "healthy" {
			result.Status = "degraded"
		}
		result.Avatar = "unreachable"
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Avatar service ping failed: %v", err)
		}
		log.Printf("Health check - avatar service ping: %v", err)
	} else {
		result.Avatar = "ok"
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
