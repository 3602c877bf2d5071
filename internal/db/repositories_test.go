package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lunelabs/cyclefem/internal/models"
)

func newRepositoriesForTest(t *testing.T) *Repositories {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cyclefem-repos.db")
	database := openSQLiteForTest(t, databasePath)
	return NewRepositories(database)
}

func seedUser(t *testing.T, repos *Repositories, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		Name:         "Test",
		PasswordHash: "hash",
		CycleLength:  models.DefaultCycleLength,
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}

func TestUserRepository_NormalizedEmailIsCaseInsensitive(t *testing.T) {
	repos := newRepositoriesForTest(t)
	seedUser(t, repos, "Ana@Example.com")

	exists, err := repos.Users.ExistsByNormalizedEmail("ana@example.com")
	if err != nil {
		t.Fatalf("exists lookup: %v", err)
	}
	if !exists {
		t.Fatal("expected normalized lookup to match mixed-case stored email")
	}

	found, err := repos.Users.FindByNormalizedEmail("ana@example.com")
	if err != nil {
		t.Fatalf("find by normalized email: %v", err)
	}
	if found.Email != "Ana@Example.com" {
		t.Fatalf("expected stored email preserved, got %q", found.Email)
	}

	duplicate := models.User{Email: "ANA@EXAMPLE.COM", PasswordHash: "hash-2"}
	if err := repos.Users.Create(&duplicate); err == nil {
		t.Fatal("expected duplicate normalized email insert to fail")
	}
}

func TestUserRepository_UpdateByID(t *testing.T) {
	repos := newRepositoriesForTest(t)
	user := seedUser(t, repos, "ana@example.com")

	updates := map[string]any{"name": "Renamed", "cycle_length": 30}
	if err := repos.Users.UpdateByID(user.ID, updates); err != nil {
		t.Fatalf("update user: %v", err)
	}

	reloaded, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.Name != "Renamed" || reloaded.CycleLength != 30 {
		t.Fatalf("expected updates applied, got name=%q cycle_length=%d", reloaded.Name, reloaded.CycleLength)
	}
}

func TestCycleRepository_ListRecentForUserOrdersAndLimits(t *testing.T) {
	repos := newRepositoriesForTest(t)
	user := seedUser(t, repos, "ana@example.com")

	for _, start := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		cycle := models.Cycle{UserID: user.ID, StartDate: day(t, start), Flow: models.FlowMedium}
		if err := repos.Cycles.Create(&cycle); err != nil {
			t.Fatalf("create cycle: %v", err)
		}
	}

	recent, err := repos.Cycles.ListRecentForUser(user.ID, 2)
	if err != nil {
		t.Fatalf("list recent cycles: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 cycles, got %d", len(recent))
	}
	if !recent[0].StartDate.After(recent[1].StartDate) {
		t.Fatalf("expected newest-first order, got %v then %v", recent[0].StartDate, recent[1].StartDate)
	}

	all, err := repos.Cycles.ListAllForUser(user.ID)
	if err != nil {
		t.Fatalf("list all cycles: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected full history, got %d", len(all))
	}
}

func TestCycleRepository_SymptomsRoundTrip(t *testing.T) {
	repos := newRepositoriesForTest(t)
	user := seedUser(t, repos, "ana@example.com")

	cycle := models.Cycle{
		UserID:    user.ID,
		StartDate: day(t, "2024-01-01"),
		Flow:      models.FlowHeavy,
		Symptoms:  []string{"cramps", "headache"},
		Notes:     "rough start",
	}
	if err := repos.Cycles.Create(&cycle); err != nil {
		t.Fatalf("create cycle: %v", err)
	}

	reloaded, err := repos.Cycles.FindForUser(cycle.ID, user.ID)
	if err != nil {
		t.Fatalf("reload cycle: %v", err)
	}
	if len(reloaded.Symptoms) != 2 || reloaded.Symptoms[0] != "cramps" || reloaded.Symptoms[1] != "headache" {
		t.Fatalf("expected symptoms to round-trip, got %v", reloaded.Symptoms)
	}
	if reloaded.Notes != "rough start" {
		t.Fatalf("expected notes to round-trip, got %q", reloaded.Notes)
	}
}

func TestCycleRepository_ScopesAccessToOwner(t *testing.T) {
	repos := newRepositoriesForTest(t)
	owner := seedUser(t, repos, "owner@example.com")
	intruder := seedUser(t, repos, "intruder@example.com")

	cycle := models.Cycle{UserID: owner.ID, StartDate: day(t, "2024-01-01"), Flow: models.FlowMedium}
	if err := repos.Cycles.Create(&cycle); err != nil {
		t.Fatalf("create cycle: %v", err)
	}

	if _, err := repos.Cycles.FindForUser(cycle.ID, intruder.ID); err == nil {
		t.Fatal("expected lookup by a different user to fail")
	}

	deleted, err := repos.Cycles.DeleteForUser(cycle.ID, intruder.ID)
	if err != nil {
		t.Fatalf("delete by intruder: %v", err)
	}
	if deleted {
		t.Fatal("expected delete by a different user to affect nothing")
	}

	deleted, err = repos.Cycles.DeleteForUser(cycle.ID, owner.ID)
	if err != nil {
		t.Fatalf("delete by owner: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete by owner to succeed")
	}
}

func TestActivityRepository_ListNewestFirst(t *testing.T) {
	repos := newRepositoriesForTest(t)
	user := seedUser(t, repos, "ana@example.com")

	for _, date := range []string{"2024-01-05", "2024-01-20", "2024-01-10"} {
		activity := models.Activity{UserID: user.ID, Date: day(t, date), Risk: models.RiskUnknown}
		if err := repos.Activities.Create(&activity); err != nil {
			t.Fatalf("create activity: %v", err)
		}
	}

	activities, err := repos.Activities.ListForUser(user.ID)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(activities))
	}
	if !activities[0].Date.After(activities[1].Date) || !activities[1].Date.After(activities[2].Date) {
		t.Fatal("expected activities ordered newest-first")
	}
}

func TestChatRepository_ListRecentForUserHonorsLimit(t *testing.T) {
	repos := newRepositoriesForTest(t)
	user := seedUser(t, repos, "ana@example.com")

	for i := 0; i < 5; i++ {
		message := models.ChatMessage{UserID: user.ID, Message: "q", Response: "a"}
		if err := repos.Chats.Create(&message); err != nil {
			t.Fatalf("create chat message: %v", err)
		}
	}

	messages, err := repos.Chats.ListRecentForUser(user.ID, 3)
	if err != nil {
		t.Fatalf("list chat messages: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
}
