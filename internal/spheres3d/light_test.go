package spheres3d

import (
	"errors"
	"math"
	"testing"
)

func TestNewLightValidation(t *testing.T) {
	if _, err := NewAmbientLight(-0.1); !errors.Is(err, ErrInvalidScene) {
		t.Fatal("expected error for negative ambient intensity")
	}
	if _, err := NewPointLight(math.NaN(), Vector3{}); !errors.Is(err, ErrInvalidScene) {
		t.Fatal("expected error for NaN intensity")
	}
	if _, err := NewPointLight(1, Vector3{math.NaN(), 0, 0}); !errors.Is(err, ErrInvalidScene) {
		t.Fatal("expected error for NaN position")
	}
	if _, err := NewDirectionalLight(1, Vector3{}); !errors.Is(err, ErrInvalidScene) {
		t.Fatal("expected error for zero direction")
	}
	if _, err := NewDirectionalLight(1, Vector3{0, math.NaN(), 1}); !errors.Is(err, ErrInvalidScene) {
		t.Fatal("expected error for NaN direction")
	}
	if _, err := NewAmbientLight(0); err != nil {
		t.Fatalf("zero intensity is allowed: %v", err)
	}
	L, err := NewDirectionalLight(0.2, Vector3{1, 4, 4})
	if err != nil {
		t.Fatal(err)
	}
	if L.Kind != Directional || L.Direction != (Vector3{1, 4, 4}) {
		t.Fatalf("directional light wrong: %+v", L)
	}
}

func TestParseLightKind(t *testing.T) {
	for _, k := range []LightKind{Ambient, Point, Directional} {
		got, err := ParseLightKind(k.String())
		if err != nil || got != k {
			t.Fatalf("round trip of %v failed: %v %v", k, got, err)
		}
	}
	if _, err := ParseLightKind("spot"); !errors.Is(err, ErrInvalidScene) {
		t.Fatal("expected error for unknown light type")
	}
	if LightKind(9).String() != "LightKind(9)" {
		t.Fatal("unexpected String for unknown kind")
	}
}
