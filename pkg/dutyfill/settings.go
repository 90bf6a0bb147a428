package dutyfill

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// fixedNote is the boilerplate appended to every distribution table's remarks
// cell. It is configuration, not logic: override it via a settings file or
// DUTYFILL_FIXED_NOTE when the wording changes.
const fixedNote = "(號轄區消防查察、水源調查)及轄區搶救困難狹小巷道防火、防災、山難，獨居老人、防震、一氧化碳居家訪視、防颱宣導、學生寄宿舍、住宅火警警報器設備設置家戶宣導及AED及CPR教學、住宅老舊電線抽換電氣防範火災防火宣導、廟宇爆竹煙火使用有認可安全標示宣導及液化石油氣灌(分)裝場所、販賣場所取締逾期鋼瓶、超量儲存，及查稽可疑廢棄工寮及工廠、地下爆竹非法、製造、儲存場所取締及防溺宣導勤務"

// maintenancePad trails the vehicle-maintenance block in the remarks cell;
// the legacy cell layout expects the literal run of spaces.
const maintenancePad = "                      "

// Settings holds the business constants of the distribution table. Values
// come from the built-in defaults, optionally a YAML settings file, then
// DUTYFILL_-prefixed environment variables, in that order.
type Settings struct {
	// Year is the 4-digit year embedded in the suggested output filename.
	Year string `yaml:"year" env:"YEAR"`
	// Unit is the organization label in the suggested output filename.
	Unit string `yaml:"unit" env:"UNIT"`
	// FixedNote is the constant boilerplate block for the remarks cell.
	FixedNote string `yaml:"fixed_note" env:"FIXED_NOTE"`
	// MaintenancePad trails the vehicle-maintenance block.
	MaintenancePad string `yaml:"maintenance_pad" env:"MAINTENANCE_PAD"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Year:           "2026",
		Unit:           "屏二分隊",
		FixedNote:      fixedNote,
		MaintenancePad: maintenancePad,
	}
}

// LoadSettings builds the effective settings: defaults, overlaid by the YAML
// file at path (skipped when path is empty), overlaid by environment
// variables under the DUTYFILL_ prefix.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse settings file: %w", err)
		}
	}

	if err := env.ParseWithOptions(&s, env.Options{Prefix: "DUTYFILL_"}); err != nil {
		return Settings{}, fmt.Errorf("parse settings environment: %w", err)
	}

	return s, nil
}
