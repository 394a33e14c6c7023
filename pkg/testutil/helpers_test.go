package testutil

import (
	"os"
	"testing"

	"github.com/iwvelando/substat-optimizer/internal/eatk"
)

func TestReferenceProfile(t *testing.T) {
	AssertClose(t, "reference EATK", eatk.Evaluate(ReferenceProfile()), 8721, 1e-9)
}

func TestReferenceRolls(t *testing.T) {
	rolls := ReferenceRolls()
	if rolls.Atk != 49.26 || rolls.CritRate != 2.4 || rolls.CritDamage != 4.8 {
		t.Errorf("unexpected reference rolls %+v", rolls)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "config.yaml", "profile:\n  critRate: 50\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "profile:\n  critRate: 50\n" {
		t.Errorf("unexpected content %q", data)
	}
}
