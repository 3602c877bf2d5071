package api

import (
	"time"

	"github.com/lunelabs/cyclefem/internal/models"
	"github.com/lunelabs/cyclefem/internal/services"
)

type userView struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	CycleLength int    `json:"cycleLength"`
}

type fertileWindowView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type predictionView struct {
	NextPeriod     string            `json:"nextPeriod"`
	Ovulation      string            `json:"ovulation"`
	FertileWindow  fertileWindowView `json:"fertileWindow"`
	AvgCycleLength int               `json:"avgCycleLength"`
}

type cycleView struct {
	ID        uint     `json:"id"`
	StartDate string   `json:"startDate"`
	EndDate   *string  `json:"endDate"`
	Flow      string   `json:"flow"`
	Symptoms  []string `json:"symptoms"`
	Notes     string   `json:"notes"`
	CreatedAt string   `json:"createdAt"`
}

type activityView struct {
	ID            uint   `json:"id"`
	Date          string `json:"date"`
	Protection    bool   `json:"protection"`
	PregnancyRisk string `json:"pregnancyRisk"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"createdAt"`
}

type chatEntryView struct {
	ID        uint   `json:"id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	CreatedAt string `json:"createdAt"`
}

func buildUserView(user *models.User) userView {
	return userView{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		CycleLength: user.CycleLength,
	}
}

// buildPredictionView returns nil for an absent prediction so the JSON
// body carries an explicit null, the "add your first record" signal.
func buildPredictionView(prediction *services.Prediction) *predictionView {
	if prediction == nil {
		return nil
	}
	return &predictionView{
		NextPeriod: services.FormatDay(prediction.NextPeriod),
		Ovulation:  services.FormatDay(prediction.Ovulation),
		FertileWindow: fertileWindowView{
			Start: services.FormatDay(prediction.FertileWindow.Start),
			End:   services.FormatDay(prediction.FertileWindow.End),
		},
		AvgCycleLength: prediction.AvgCycleLength,
	}
}

func buildCycleView(cycle models.Cycle) cycleView {
	view := cycleView{
		ID:        cycle.ID,
		StartDate: services.FormatDay(cycle.StartDate),
		Flow:      cycle.Flow,
		Symptoms:  cycle.Symptoms,
		Notes:     cycle.Notes,
		CreatedAt: cycle.CreatedAt.UTC().Format(time.RFC3339),
	}
	if view.Symptoms == nil {
		view.Symptoms = []string{}
	}
	if cycle.EndDate != nil {
		endDate := services.FormatDay(*cycle.EndDate)
		view.EndDate = &endDate
	}
	return view
}

func buildCycleViews(cycles []models.Cycle) []cycleView {
	views := make([]cycleView, 0, len(cycles))
	for _, cycle := range cycles {
		views = append(views, buildCycleView(cycle))
	}
	return views
}

func buildActivityView(activity models.Activity) activityView {
	return activityView{
		ID:            activity.ID,
		Date:          services.FormatDay(activity.Date),
		Protection:    activity.Protection,
		PregnancyRisk: activity.Risk,
		Notes:         activity.Notes,
		CreatedAt:     activity.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func buildChatEntryView(message models.ChatMessage) chatEntryView {
	return chatEntryView{
		ID:        message.ID,
		Message:   message.Message,
		Response:  message.Response,
		CreatedAt: message.CreatedAt.UTC().Format(time.RFC3339),
	}
}
