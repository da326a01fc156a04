package explain

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/trilemma/trinity"
)

// Language selects the language the generator is asked to answer in.
type Language string

const (
	Vietnamese Language = "vi"
	English    Language = "en"
)

// ParseLanguage maps "vi" and "en" (case-insensitive) to a Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Vietnamese:
		return Vietnamese, nil
	case English:
		return English, nil
	}
	return "", fmt.Errorf("unsupported language %q (want vi or en)", s)
}

// Parameter names used as Changes keys.
const (
	ParamVietnamRate     = "vietnamRate"
	ParamUSRate          = "usRate"
	ParamCapitalOpenness = "capitalOpenness"
	ParamForeignReserves = "foreignReserves"
	ParamCentralRate     = "centralRate"
)

// Changes maps the parameters a user modified to their new values.
type Changes map[string]float64

// FormatChanges lists the changes one per line in a fixed order.
func FormatChanges(c Changes) string {
	if len(c) == 0 {
		return "No changes from baseline."
	}

	var lines []string
	add := func(name, format string) {
		if v, ok := c[name]; ok {
			lines = append(lines, fmt.Sprintf(format, v))
		}
	}
	add(ParamVietnamRate, "- Vietnam Policy Rate changed to %g%%")
	add(ParamUSRate, "- US Fed Rate changed to %g%%")
	add(ParamCapitalOpenness, "- Capital Openness (KAOPEN) changed to %g")
	add(ParamForeignReserves, "- Foreign Reserves changed to $%g billion")
	add(ParamCentralRate, "- Central Exchange Rate changed to %g VND/USD")

	if len(lines) == 0 {
		return "No changes from baseline."
	}
	return strings.Join(lines, "\n")
}

// Summary renders a snapshot as the plain-text block embedded in prompts.
func Summary(r trinity.SnapshotResult) string {
	flowDir := "outflow"
	if r.CapitalFlow > 0 {
		flowDir = "inflow"
	}
	rateDir := "appreciation"
	if r.ExchangeRate.Change > 0 {
		rateDir = "depreciation"
	}
	reserveDir := "accumulation"
	if r.Reserves.Depletion > 0 {
		reserveDir = "depletion"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Interest Rate Differential: %.2f%%\n", r.RateDifferential)
	fmt.Fprintf(&b, "Capital Flow: %.2f billion (%s)\n", abs(r.CapitalFlow), flowDir)
	fmt.Fprintf(&b, "Exchange Rate: %.0f VND/USD (%s of %.2f%%)\n",
		r.ExchangeRate.NewRate, rateDir, abs(r.ExchangeRate.PercentChange))
	fmt.Fprintf(&b, "Volatility: %.2f%%\n", r.Volatility)
	fmt.Fprintf(&b, "Foreign Reserves: $%.2f billion (%s of %.2f%%)\n",
		r.Reserves.NewReserves, reserveDir, abs(r.Reserves.PercentDepletion))
	fmt.Fprintf(&b, "Constraint Violated: %s\n", strings.ToUpper(string(r.Constraint.MostViolated)))
	fmt.Fprintf(&b, "Severity: %s", strings.ToUpper(string(r.Constraint.Severity)))
	return b.String()
}

func languageInstruction(lang Language, quick bool) string {
	switch {
	case lang == Vietnamese && quick:
		return "Trả lời bằng tiếng Việt trong 2-3 câu ngắn gọn."
	case lang == Vietnamese:
		return "Vui lòng trả lời bằng tiếng Việt."
	case quick:
		return "Respond in English in 2-3 brief sentences."
	default:
		return "Please respond in English."
	}
}

// BuildPrompt assembles the full explanation request for a snapshot.
func BuildPrompt(r trinity.SnapshotResult, changes Changes, lang Language) string {
	base := trinity.Baseline()

	var b strings.Builder
	b.WriteString("You are an expert economist specializing in international finance and the Impossible Trinity (Trilemma) model.\n\n")
	b.WriteString("CONTEXT:\n")
	b.WriteString("Vietnam runs a managed float exchange rate regime. It has traditionally prioritized Exchange Rate Stability (ERS) and Monetary Independence (MI) while keeping capital controls in place (restricted Financial Integration/KAO).\n\n")
	b.WriteString("CURRENT SIMULATION DATA:\n")
	b.WriteString(Summary(r))
	b.WriteString("\n\nUSER CHANGES:\n")
	b.WriteString(FormatChanges(changes))
	b.WriteString("\n\nBASELINE DATA (Vietnam, 2025):\n")
	fmt.Fprintf(&b, "- Vietnam Policy Rate: %.2f%%\n", base.VietnamRate)
	fmt.Fprintf(&b, "- US Fed Rate: %.2f%%\n", base.USRate)
	fmt.Fprintf(&b, "- Central Exchange Rate: %.0f VND/USD\n", base.CentralRate)
	fmt.Fprintf(&b, "- Foreign Reserves: $%.2f billion\n", base.ForeignReserves)
	fmt.Fprintf(&b, "- Capital Openness (KAOPEN): %.3f (restricted)\n\n", base.CapitalOpenness)
	b.WriteString("TASK:\n")
	b.WriteString("Explain in detail (200-300 words):\n\n")
	b.WriteString("1. **How the user's changes affect the exchange rate**: the specific impact of the parameter changes on VND/USD.\n\n")
	b.WriteString("2. **Capital flow dynamics**: whether capital flows in or out, and why (interest rate arbitrage, risk factors).\n\n")
	b.WriteString("3. **Impact on the Impossible Trinity**: which of the three goals (MI, ERS, KAO) is compromised, and why all three cannot be held at once.\n\n")
	b.WriteString("4. **Policy implications**: what the State Bank of Vietnam (SBV) would need to do (intervention, rate adjustments, capital controls).\n\n")
	b.WriteString("5. **Real-world consequences**: the practical effects on the Vietnamese economy, businesses and citizens.\n\n")
	b.WriteString(languageInstruction(lang, false))
	b.WriteString("\n\nUse clear, accessible language suitable for students and policymakers. Include specific numbers from the simulation results.")
	return b.String()
}

// QuickInsightPrompt asks for a two or three sentence risk summary.
func QuickInsightPrompt(r trinity.SnapshotResult, lang Language) string {
	var b strings.Builder
	b.WriteString("Based on this Vietnam exchange rate simulation:\n")
	fmt.Fprintf(&b, "- Exchange Rate: %.0f VND/USD (%.2f%% change)\n", r.ExchangeRate.NewRate, r.ExchangeRate.PercentChange)
	fmt.Fprintf(&b, "- Volatility: %.2f%%\n", r.Volatility)
	fmt.Fprintf(&b, "- Foreign Reserves: $%.2f billion\n", r.Reserves.NewReserves)
	fmt.Fprintf(&b, "- Constraint Violated: %s\n", r.Constraint.MostViolated)
	fmt.Fprintf(&b, "- Severity: %s\n\n", r.Constraint.Severity)
	b.WriteString("Provide a brief summary of the key risk or opportunity in this scenario.\n\n")
	b.WriteString(languageInstruction(lang, true))
	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
