package validate_test

import (
	"testing"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/validate"
)

type bookingInput struct {
	Destination string  `json:"destination" validate:"required"`
	TravelDate  string  `json:"travel_date" validate:"required,date"`
	Travelers   int     `json:"travelers"   validate:"required,integer,gte=1"`
	Total       float64 `json:"total"       validate:"nullable,numeric,gte=0"`
	Status      string  `json:"status"      validate:"nullable,in=confirmed,pending_quote,cancelled"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(bookingInput{
		Destination: "Bali, Indonesia",
		TravelDate:  "2026-10-01",
		Travelers:   2,
		Total:       1798,
		Status:      "confirmed",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(bookingInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	if _, ok := errs["destination"]; !ok {
		t.Error("expected destination to be required")
	}
	if _, ok := errs["travel_date"]; !ok {
		t.Error("expected travel_date to be required")
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(bookingInput{
		Destination: "Bali, Indonesia",
		TravelDate:  "2026-10-01",
		Travelers:   1,
		// Total and Status empty: nullable, so no errors.
	})
	if validate.HasErrors(errs) {
		t.Errorf("nullable fields should be skippable, got: %v", errs)
	}
}

func TestDateRule(t *testing.T) {
	errs := validate.Struct(bookingInput{
		Destination: "Bali, Indonesia",
		TravelDate:  "not a date",
		Travelers:   1,
	})
	if _, ok := errs["travel_date"]; !ok {
		t.Error("expected travel_date error for junk input")
	}
}

func TestInRuleKeepsAllOptions(t *testing.T) {
	for _, status := range []string{"confirmed", "pending_quote", "cancelled"} {
		errs := validate.Struct(bookingInput{
			Destination: "Bali, Indonesia",
			TravelDate:  "2026-10-01",
			Travelers:   1,
			Status:      status,
		})
		if _, ok := errs["status"]; ok {
			t.Errorf("status %q should be allowed", status)
		}
	}

	errs := validate.Struct(bookingInput{
		Destination: "Bali, Indonesia",
		TravelDate:  "2026-10-01",
		Travelers:   1,
		Status:      "bogus",
	})
	if _, ok := errs["status"]; !ok {
		t.Error("expected status error for value outside the list")
	}
}

func TestGteOnNumbers(t *testing.T) {
	type in struct {
		Travelers int `json:"travelers" validate:"required,gte=1"`
	}
	if errs := validate.Struct(in{Travelers: 0}); !validate.HasErrors(errs) {
		t.Error("expected gte error for 0 travelers")
	}
	if errs := validate.Struct(in{Travelers: 3}); validate.HasErrors(errs) {
		t.Errorf("3 travelers should pass, got: %v", errs)
	}
}

func TestMinOnStrings(t *testing.T) {
	type in struct {
		Password string `json:"password" validate:"required,min=6"`
	}
	if errs := validate.Struct(in{Password: "abc"}); !validate.HasErrors(errs) {
		t.Error("expected min error for short password")
	}
	if errs := validate.Struct(in{Password: "abcdef"}); validate.HasErrors(errs) {
		t.Errorf("six chars should pass, got: %v", errs)
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email error")
	}
	if errs := validate.Struct(in{Email: "ada@example.com"}); validate.HasErrors(errs) {
		t.Errorf("valid email should pass, got: %v", errs)
	}
}
