package api

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileUpdateInput struct {
	Name        string `json:"name"`
	CycleLength int    `json:"cycleLength"`
}

type cycleCreateInput struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Flow      string   `json:"flow"`
	Symptoms  []string `json:"symptoms"`
	Notes     string   `json:"notes"`
}

// Pointer fields distinguish "absent" from "set to empty" on partial
// updates; an explicit empty endDate reopens the cycle.
type cycleUpdateInput struct {
	StartDate *string   `json:"startDate"`
	EndDate   *string   `json:"endDate"`
	Flow      *string   `json:"flow"`
	Symptoms  *[]string `json:"symptoms"`
	Notes     *string   `json:"notes"`
}

type activityCreateInput struct {
	Date       string `json:"date"`
	Protection bool   `json:"protection"`
	Notes      string `json:"notes"`
}

type chatInput struct {
	Message string `json:"message"`
}
