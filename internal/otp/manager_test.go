package otp

import (
	"strconv"
	"testing"
	"time"
)

func TestIssueGeneratesSixDigitCode(t *testing.T) {
	m := NewManager(0)
	for i := 0; i < 50; i++ {
		code, err := m.Issue("farmer")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digit code, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d outside expected range", n)
		}
	}
}

func TestValidateConsumesCode(t *testing.T) {
	m := NewManager(0)
	code, err := m.Issue("farmer")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if !m.ValidateAndConsume("farmer", code) {
		t.Fatalf("expected first validation to succeed")
	}
	if m.ValidateAndConsume("farmer", code) {
		t.Fatalf("expected code to be single use")
	}
}

func TestReissueInvalidatesPreviousCode(t *testing.T) {
	m := NewManager(0)
	first, err := m.Issue("farmer")
	if err != nil {
		t.Fatalf("issue first: %v", err)
	}
	second, err := m.Issue("farmer")
	if err != nil {
		t.Fatalf("issue second: %v", err)
	}

	if first != second && m.ValidateAndConsume("farmer", first) {
		t.Fatalf("expected superseded code to be rejected")
	}
	if !m.ValidateAndConsume("farmer", second) {
		t.Fatalf("expected latest code to validate")
	}
}

func TestValidateRejectsUnknownUserAndWrongCode(t *testing.T) {
	m := NewManager(0)
	if m.ValidateAndConsume("ghost", "123456") {
		t.Fatalf("expected unknown user to fail validation")
	}

	code, err := m.Issue("farmer")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	if m.ValidateAndConsume("farmer", wrong) {
		t.Fatalf("expected wrong code to fail")
	}
	if !m.ValidateAndConsume("farmer", code) {
		t.Fatalf("expected stored code to survive a failed attempt")
	}
}

func TestValidateHonorsTTL(t *testing.T) {
	m := NewManager(5 * time.Minute)
	current := time.Now()
	m.now = func() time.Time { return current }

	code, err := m.Issue("farmer")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	current = current.Add(6 * time.Minute)
	if m.ValidateAndConsume("farmer", code) {
		t.Fatalf("expected expired code to be rejected")
	}
}
