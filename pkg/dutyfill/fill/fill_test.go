package fill

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/yctsai/dutyfill-go/pkg/dutyfill/models"
)

func testRecord() models.DutyRecord {
	slots := make([]models.TimeSlot, 24)
	slots[0] = models.TimeSlot{Time: "08~09", Duty: "08", Rescue: "08,20", Standby: "10,14,01", Rest: "18,03"}
	slots[1] = models.TimeSlot{Time: "09~10", Duty: "09"}
	return models.DutyRecord{
		TimeSlots: slots,
		Remarks:   "晨間訓練\n※注意",
		Dispatch:  "16車(10,01)",
		FixedNote: "固定附記",
	}
}

func TestFill(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// Pre-existing template content that must survive the fill.
	if err := f.SetCellValue("Sheet1", "A1", "勤務分配表"); err != nil {
		t.Fatalf("SetCellValue failed: %v", err)
	}
	if err := f.SetCellValue("Sheet1", "F5", "原值"); err != nil {
		t.Fatalf("SetCellValue failed: %v", err)
	}

	rec := testRecord()
	rec.VehicleMaintenance = "(水)保養車輛:91-91 保養人:陳一"

	buf, err := Fill(f, rec, Options{MaintenancePad: "  "})
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	out, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("Failed to reopen output: %v", err)
	}
	defer out.Close()

	checks := map[string]string{
		"E4":  "08",       // duty, slot 1
		"E5":  "08,20",    // rescue, slot 1
		"E11": "10,14,01", // standby, slot 1
		"E12": "18,03",    // rest, slot 1
		"F4":  "09",       // duty, slot 2
		"E17": "16車(10,01)",
		"E18": "晨間訓練\n※注意\n(水)保養車輛:91-91 保養人:陳一  \n固定附記",
		"A1":  "勤務分配表", // untouched template cell
		"F5":  "原值",    // empty rescue slot leaves the template value
	}
	for cell, want := range checks {
		got, err := out.GetCellValue("Sheet1", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, expected %q", cell, got, want)
		}
	}
}

func TestFillSkipsEmptyDispatchAndRemarks(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetCellValue("Sheet1", "E17", "模板提示"); err != nil {
		t.Fatalf("SetCellValue failed: %v", err)
	}

	rec := models.DutyRecord{TimeSlots: make([]models.TimeSlot, 24)}
	buf, err := Fill(f, rec, Options{})
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	out, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("Failed to reopen output: %v", err)
	}
	defer out.Close()

	got, err := out.GetCellValue("Sheet1", "E17")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "模板提示" {
		t.Errorf("E17 = %q, expected the template value to survive", got)
	}
	if got, _ := out.GetCellValue("Sheet1", "E18"); got != "" {
		t.Errorf("E18 = %q, expected empty", got)
	}
}

func TestCombinedRemarks(t *testing.T) {
	tests := []struct {
		name     string
		rec      models.DutyRecord
		pad      string
		expected string
	}{
		{
			name:     "all sections",
			rec:      models.DutyRecord{Remarks: "甲", VehicleMaintenance: "乙", FixedNote: "丙"},
			pad:      " ",
			expected: "甲\n乙 \n丙",
		},
		{
			name:     "maintenance only",
			rec:      models.DutyRecord{VehicleMaintenance: "乙"},
			pad:      " ",
			expected: "乙 ",
		},
		{
			name:     "note only",
			rec:      models.DutyRecord{FixedNote: "丙"},
			expected: "丙",
		},
		{
			name:     "empty",
			rec:      models.DutyRecord{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := combinedRemarks(tt.rec, Options{MaintenancePad: tt.pad})
			if got != tt.expected {
				t.Errorf("combinedRemarks = %q, expected %q", got, tt.expected)
			}
		})
	}
}
