package core

import (
	"math"
	"math/rand"
	"testing"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_BasicOps(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(2, 3, 4)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(3, 5, 7)},
		{"subtract", a.Add(b).Subtract(b), a},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"component multiply", a.MultiplyVec(b), NewVec3(2, 6, 12)},
		{"scalar multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"scalar first", Scale(2, a), NewVec3(2, 4, 6)},
		{"divide", NewVec3(2, 4, 6).Divide(2), a},
		{"cross", NewVec3(3, 5, 7).Cross(a), NewVec3(1, -2, 1)},
		{"unit vector", NewVec3(1, 2, 2).UnitVector(), NewVec3(1.0/3.0, 2.0/3.0, 2.0/3.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.result, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); got != 20 {
		t.Errorf("Expected dot 20, got %f", got)
	}
	if got := NewVec3(1, 2, 2).LengthSquared(); got != 9 {
		t.Errorf("Expected length squared 9, got %f", got)
	}
	if got := NewVec3(1, 2, 2).Length(); got != 3 {
		t.Errorf("Expected length 3, got %f", got)
	}
}

func TestVec3_InPlace(t *testing.T) {
	v := NewVec3(5, 3, 1)
	v.AddAssign(NewVec3(-1, -2, -3))
	if !v.Equals(NewVec3(4, 1, -2)) {
		t.Errorf("AddAssign: got %v", v)
	}
	v.MultiplyAssign(2)
	if !v.Equals(NewVec3(8, 2, -4)) {
		t.Errorf("MultiplyAssign: got %v", v)
	}
	v.DivideAssign(2)
	if !v.Equals(NewVec3(4, 1, -2)) {
		t.Errorf("DivideAssign: got %v", v)
	}
}

func TestVec3_Index(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for i, want := range []float64{1, 2, 3} {
		if got := v.Index(i); got != want {
			t.Errorf("Index(%d): expected %f, got %f", i, want, got)
		}
	}

	for _, bad := range []int{-1, 3} {
		t.Run("out of range", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for index %d", bad)
				}
			}()
			v.Index(bad)
		})
	}
}

func TestVec3_String(t *testing.T) {
	if got := NewVec3(1, 2, 3).String(); got != "1 2 3" {
		t.Errorf("Expected \"1 2 3\", got %q", got)
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	zero := NewVec3(0, 0, 0)
	if zero.Length() != 0 {
		t.Errorf("Expected zero length, got %f", zero.Length())
	}
	if !zero.Normalize().Equals(zero) {
		t.Errorf("Expected zero vector, got %v", zero.Normalize())
	}
}

func TestVec3_AlgebraicProperties(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomVec := func() Vec3 {
		return NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
	}

	for i := 0; i < 200; i++ {
		a, b := randomVec(), randomVec()
		k := random.Float64()*10 - 5

		if sum := a.Add(a.Negate()); !sum.Equals(NewVec3(0, 0, 0)) {
			t.Fatalf("v + (-v) = %v, expected zero", sum)
		}
		if a.Dot(b) != b.Dot(a) {
			t.Fatalf("dot not symmetric for %v, %v", a, b)
		}
		if !a.Cross(b).Equals(b.Cross(a).Negate()) {
			t.Fatalf("cross not anti-symmetric for %v, %v", a, b)
		}
		if !a.Multiply(k).Equals(Scale(k, a)) {
			t.Fatalf("scalar multiply does not commute for %v, %f", a, k)
		}
		if a.LengthSquared() > 0 {
			if l := a.UnitVector().Length(); math.Abs(l-1) > 1e-12 {
				t.Fatalf("unit vector length %f for %v", l, a)
			}
		}
	}
}
