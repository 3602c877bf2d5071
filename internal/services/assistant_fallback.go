package services

import "strings"

// FallbackResponse picks a canned answer for the assistant when no
// language-model backend is reachable. Matching is keyword-based on the
// lowercased message; unmatched questions get the generic apology.
func FallbackResponse(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "I'm sorry, I'm having technical difficulties right now. How can I help you with your menstrual cycle?"
	}

	lower := strings.ToLower(trimmed)

	if containsAny(lower, "period", "menstrua", "bleed") {
		return `I understand you have questions about your menstrual cycle.

For personalized tracking, log your period dates in the app. Some general reference points:

- A normal cycle runs 21 to 35 days
- A typical period lasts 3 to 7 days
- The fertile phase usually opens about 5 days before ovulation

For advice specific to you, please talk to a health professional.`
	}

	if containsAny(lower, "ovulat", "fertil") {
		return `About ovulation and fertility:

Ovulation usually happens about 14 days before the next period starts. The fertile window opens 5 days before ovulation and closes shortly after it.

For an estimate tuned to your own cycle, use the prediction feature with your logged data.`
	}

	if containsAny(lower, "symptom", "pain", "cramp", "headache") {
		return `Common menstrual symptoms include abdominal cramps, headaches, mood changes, fatigue and breast tenderness.

If your symptoms are severe or disrupt your daily life, please see a gynecologist.`
	}

	if containsAny(lower, "contracept", "protect", "pregnan") {
		return `About contraception and pregnancy prevention:

The app can help you identify your fertile window, but it is not a contraceptive method.

For personalized contraception advice, please consult a health professional.`
	}

	if containsAny(lower, "when", "next", "date") {
		return `To find your important dates:

The app predicts your next period, ovulation and fertile window from your history.

For accurate predictions, log your period dates, fill in past cycles, then check the predictions section. More personal data means more reliable estimates.`
	}

	return `I'm sorry, I'm having technical difficulties right now.

In the meantime you can log your menstrual cycles, check your fertility predictions and review your history.

For specific health questions, please consult a health professional.`
}

func containsAny(value string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(value, needle) {
			return true
		}
	}
	return false
}
