package handler

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"civicpulse/internal/model"
	"civicpulse/pkg/alert"
)

type AlertStore interface {
	GetLatestSummary() (*model.DashboardSummary, error)
	SaveAlertEvent(e *model.AlertEvent) error
}

type AlertHandler struct {
	repository AlertStore
	history    *alert.History
	sender     alert.Sender
	threshold  float64
}

func NewAlertHandler(repository AlertStore, history *alert.History, sender alert.Sender, threshold float64) *AlertHandler {
	return &AlertHandler{
		repository: repository,
		history:    history,
		sender:     sender,
		threshold:  threshold,
	}
}

// SendAlert sends a manual escalation alert for the current risk score,
// subject to the cooldown.
func (h *AlertHandler) SendAlert(c *gin.Context) {
	if remaining, active := h.history.TimeUntilNext(); active {
		minutes := int(math.Ceil(remaining.Minutes()))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": fmt.Sprintf("Alert cooldown active. Try again in %d minutes.", minutes),
		})
		return
	}

	summary, err := h.repository.GetLatestSummary()
	if err != nil {
		slog.Error("error fetching summary for alert", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No summary available. Trigger a refresh first."})
		return
	}

	if err := h.sender.SendAlert(summary.RiskScore, true); err != nil {
		slog.Error("error sending alert email", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send alert email"})
		return
	}

	h.history.Record()

	event := model.AlertEvent{RiskScore: summary.RiskScore, Manual: true}
	if err := h.repository.SaveAlertEvent(&event); err != nil {
		slog.Error("error saving alert event", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "sent",
		"risk_score": summary.RiskScore,
	})
}

// SendTest sends a configuration test email, bypassing the cooldown.
func (h *AlertHandler) SendTest(c *gin.Context) {
	if err := h.sender.SendTest(); err != nil {
		slog.Error("error sending test email", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send test email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

func (h *AlertHandler) GetStatus(c *gin.Context) {
	summary, err := h.repository.GetLatestSummary()
	if err != nil {
		slog.Error("error fetching summary for alert status", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := AlertStatusResponse{
		RiskLevel: "Low",
		Status:    "Normal",
		CanSend:   h.history.CanSend(),
	}

	if summary != nil {
		res.RiskScore = summary.RiskScore
		res.RiskLevel = summary.RiskLevel
		if summary.RiskScore >= h.threshold {
			res.Status = "High Risk"
		}
	}

	if last, ok := h.history.LastAlert(); ok {
		res.LastAlertAt = last.Format(time.RFC3339)
	}

	if remaining, active := h.history.TimeUntilNext(); active {
		res.SecondsUntilNext = int(math.Ceil(remaining.Seconds()))
	}

	c.JSON(http.StatusOK, res)
}

func (h *AlertHandler) GetConfig(c *gin.Context) {
	recipients := h.sender.Recipients()
	if recipients == nil {
		recipients = []string{}
	}

	c.JSON(http.StatusOK, AlertConfigResponse{
		Threshold:       h.threshold,
		CooldownMinutes: int(h.history.Cooldown().Minutes()),
		EmailConfigured: h.sender.Configured(),
		Recipients:      recipients,
	})
}
