// Package scenario holds the named policy presets and runs them through the
// engine.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/rustyeddy/trilemma/trinity"
	"gopkg.in/yaml.v3"
)

// ErrUnknown is returned by Get for an id not in the catalog.
var ErrUnknown = errors.New("scenario: unknown preset")

// Text is a string in both supported languages.
type Text struct {
	Vi string `json:"vi" yaml:"vi"`
	En string `json:"en" yaml:"en"`
}

// In returns the Vietnamese text for "vi" and English otherwise.
func (t Text) In(lang string) string {
	if lang == "vi" && t.Vi != "" {
		return t.Vi
	}
	return t.En
}

// Preset is a named parameter set with the goals it is meant to achieve.
type Preset struct {
	ID          string             `json:"id" yaml:"id"`
	Name        Text               `json:"name" yaml:"name"`
	Description Text               `json:"description" yaml:"description"`
	Warning     Text               `json:"warning,omitempty" yaml:"warning,omitempty"`
	Params      trinity.Parameters `json:"params" yaml:"params"`
	Goals       []trinity.Goal     `json:"goals" yaml:"goals"`
	Severity    trinity.Severity   `json:"severity" yaml:"severity"`
}

// Achieves reports whether g is one of the preset's target goals.
func (p Preset) Achieves(g trinity.Goal) bool {
	for _, goal := range p.Goals {
		if goal == g {
			return true
		}
	}
	return false
}

func params(vn, us, open, reserves float64) trinity.Parameters {
	return trinity.Parameters{
		VietnamRate:     vn,
		USRate:          us,
		CapitalOpenness: open,
		ForeignReserves: reserves,
		CentralRate:     trinity.BaselineCentralRate,
	}
}

var builtin = []Preset{
	{
		ID:          "baseline",
		Name:        Text{Vi: "Việt Nam Hiện Tại", En: "Vietnam Current"},
		Description: Text{Vi: "MI + ERS, hạn chế vốn (KAOPEN -0.166)", En: "MI + ERS, restricted capital (KAOPEN -0.166)"},
		Params:      params(4.5, 4.25, -0.166, 83.08),
		Goals:       []trinity.Goal{trinity.GoalMI, trinity.GoalERS},
		Severity:    trinity.SeverityStable,
	},
	{
		ID:          "violation",
		Name:        Text{Vi: "Vi Phạm Trilemma", En: "Trilemma Violation"},
		Description: Text{Vi: "Cố đạt cả 3: MI + ERS + KAO → Khủng hoảng!", En: "Trying all 3: MI + ERS + KAO → Crisis!"},
		Warning: Text{
			Vi: "Kịch bản này không bền vững! Dự trữ ngoại hối sẽ cạn kiệt nhanh chóng và tỷ giá sẽ sụp đổ.",
			En: "This scenario is unsustainable! Foreign reserves will deplete rapidly and the exchange rate will collapse.",
		},
		Params:   params(6.0, 4.25, 1.5, 40.0),
		Goals:    []trinity.Goal{trinity.GoalMI, trinity.GoalERS, trinity.GoalKAO},
		Severity: trinity.SeverityCrisis,
	},
	{
		ID:          "capital-liberalization",
		Name:        Text{Vi: "Mở Cửa Vốn", En: "Capital Liberalization"},
		Description: Text{Vi: "VN mở cửa tài chính → Tỷ giá biến động mạnh", En: "VN opens capital account → High volatility"},
		Warning: Text{
			Vi: "Tỷ giá sẽ dao động mạnh, có thể vượt biên độ ±5%. NHNN mất khả năng kiểm soát tỷ giá.",
			En: "Exchange rate will fluctuate heavily, may exceed ±5% band. SBV loses control over exchange rate.",
		},
		Params:   params(4.5, 4.25, 1.8, 83.08),
		Goals:    []trinity.Goal{trinity.GoalMI, trinity.GoalKAO},
		Severity: trinity.SeverityWarning,
	},
	{
		ID:          "rate-hike-defense",
		Name:        Text{Vi: "Tăng Lãi Suất Phòng Thủ", En: "Defensive Rate Hike"},
		Description: Text{Vi: "Fed tăng lãi → VN buộc phải theo để giữ vốn", En: "Fed hikes → VN must follow to retain capital"},
		Warning: Text{
			Vi: "Mất độc lập tiền tệ - phải theo Fed. Lãi suất cao gây thiệt hại cho kinh tế trong nước.",
			En: "Loss of monetary independence - must follow Fed. High rates damage domestic economy.",
		},
		Params:   params(7.5, 6.0, 0.5, 60.0),
		Goals:    []trinity.Goal{trinity.GoalERS, trinity.GoalKAO},
		Severity: trinity.SeverityWarning,
	},
	{
		ID:          "crisis-1997",
		Name:        Text{Vi: "Khủng Hoảng 1997", En: "1997-Style Crisis"},
		Description: Text{Vi: "Mở cửa + Lãi suất thấp + Dự trữ cạn → Sụp đổ", En: "Open capital + Low rates + Low reserves → Collapse"},
		Warning: Text{
			Vi: "KHỦNG HOẢNG TÀI CHÍNH! Vốn tháo chạy hàng loạt, tỷ giá mất giá mạnh, cần cứu trợ quốc tế.",
			En: "FINANCIAL CRISIS! Massive capital flight, currency collapse, international bailout needed.",
		},
		Params:   params(3.0, 5.5, 1.5, 25.0),
		Goals:    []trinity.Goal{trinity.GoalKAO},
		Severity: trinity.SeverityCrisis,
	},
	{
		ID:          "hard-peg",
		Name:        Text{Vi: "Hard Peg (Hong Kong)", En: "Hard Peg (Hong Kong)"},
		Description: Text{Vi: "Cố định tỷ giá cứng + Mở cửa vốn → Mất độc lập tiền tệ", En: "Hard currency peg + Open capital → Loss of monetary independence"},
		Warning: Text{
			Vi: "Mất hoàn toàn độc lập tiền tệ - phải theo Fed. Không thể điều chỉnh lãi suất theo nhu cầu nội địa.",
			En: "Complete loss of monetary independence - must follow Fed. Cannot adjust rates for domestic needs.",
		},
		Params:   params(4.25, 4.25, 1.8, 120.0),
		Goals:    []trinity.Goal{trinity.GoalERS, trinity.GoalKAO},
		Severity: trinity.SeverityStable,
	},
	{
		ID:          "floating-open",
		Name:        Text{Vi: "Floating + Mở Cửa (UK/US)", En: "Floating + Open (UK/US)"},
		Description: Text{Vi: "Độc lập tiền tệ + Mở cửa vốn → Tỷ giá float tự do", En: "Monetary independence + Open capital → Free floating exchange rate"},
		Warning: Text{
			Vi: "Tỷ giá biến động mạnh theo thị trường. NHNN không can thiệp, doanh nghiệp phải tự hedge rủi ro.",
			En: "Exchange rate fluctuates freely with market. No central bank intervention, businesses must hedge risks.",
		},
		Params:   params(5.5, 4.25, 1.9, 83.08),
		Goals:    []trinity.Goal{trinity.GoalMI, trinity.GoalKAO},
		Severity: trinity.SeverityWarning,
	},
}

// All returns a copy of the built-in presets in display order.
func All() []Preset {
	out := make([]Preset, len(builtin))
	for i, p := range builtin {
		p.Goals = append([]trinity.Goal(nil), p.Goals...)
		out[i] = p
	}
	return out
}

// Get looks up a preset by id in presets, or in the built-in catalog when
// presets is nil.
func Get(id string, presets []Preset) (Preset, error) {
	if presets == nil {
		presets = builtin
	}
	for _, p := range presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknown, id)
}

// catalogFile is the on-disk layout read by LoadFile.
type catalogFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadFile reads additional presets from YAML and returns them appended to
// the built-in catalog. A preset with a built-in id replaces it. Presets
// without a central rate get the baseline rate.
func LoadFile(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}

	out := All()
	for _, p := range f.Presets {
		if p.ID == "" {
			return nil, fmt.Errorf("parse scenario file: preset without id")
		}
		if p.Params.CentralRate == 0 {
			p.Params.CentralRate = trinity.BaselineCentralRate
		}
		replaced := false
		for i := range out {
			if out[i].ID == p.ID {
				out[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, p)
		}
	}
	return out, nil
}
