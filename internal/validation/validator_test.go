package validation

import "testing"

type intakeProbe struct {
	Phone string `validate:"required,phone"`
	Date  string `validate:"omitempty,date"`
	Time  string `validate:"omitempty,clock"`
}

func TestPhoneTag(t *testing.T) {
	v := New()

	valid := []string{"9876543210", "+91 98765 43210", "(020) 2612-3456"}
	for _, phone := range valid {
		if err := v.Struct(intakeProbe{Phone: phone}); err != nil {
			t.Fatalf("expected %q to validate: %v", phone, err)
		}
	}

	invalid := []string{"12345", "not-a-phone", "98765432109876543210"}
	for _, phone := range invalid {
		if err := v.Struct(intakeProbe{Phone: phone}); err == nil {
			t.Fatalf("expected %q to fail validation", phone)
		}
	}
}

func TestDateAndClockTags(t *testing.T) {
	v := New()

	if err := v.Struct(intakeProbe{Phone: "9876543210", Date: "2026-09-15", Time: "14:30"}); err != nil {
		t.Fatalf("expected valid date and time: %v", err)
	}
	if err := v.Struct(intakeProbe{Phone: "9876543210", Date: "15-09-2026"}); err == nil {
		t.Fatal("expected day-first date to fail")
	}
	if err := v.Struct(intakeProbe{Phone: "9876543210", Time: "2pm"}); err == nil {
		t.Fatal("expected non 24h time to fail")
	}
}
