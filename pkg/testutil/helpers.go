// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/substat-optimizer/internal/eatk"
)

// ReferenceProfile returns the 2900 ATK / 80 CR / 160 CD profile with a
// 200 flat and 25% combat ATK buff, which evaluates to 8721 EATK.
func ReferenceProfile() eatk.StatProfile {
	return eatk.StatProfile{
		InitialAtk:    2900,
		CritRate:      80,
		CritDamage:    160,
		FlatAtkBuff:   200,
		CombatAtkBuff: 25,
	}
}

// ReferenceRolls returns the standard roll sizes with a 49.26 ATK roll.
func ReferenceRolls() eatk.RollSpec {
	return eatk.DefaultRollSpec(49.26)
}

// AssertClose fails the test when got differs from want by tolerance or more.
func AssertClose(t testing.TB, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) >= tolerance {
		t.Errorf("%s = %v, want %v (tolerance %v)", name, got, want, tolerance)
	}
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
