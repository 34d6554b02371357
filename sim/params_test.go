package sim

import (
	"testing"

	"github.com/lixenwraith/particle-storm/parameter"
)

func TestParamsClamp(t *testing.T) {
	p := Params{Gravity: -1, Bounce: 2, Friction: 0.5, Size: 0}.Clamp()

	if p.Gravity != parameter.GravityMin {
		t.Errorf("Gravity = %v, want %v", p.Gravity, parameter.GravityMin)
	}
	if p.Bounce != parameter.BounceMax {
		t.Errorf("Bounce = %v, want %v", p.Bounce, parameter.BounceMax)
	}
	if p.Friction != parameter.FrictionMin {
		t.Errorf("Friction = %v, want %v", p.Friction, parameter.FrictionMin)
	}
	if p.Size != parameter.SizeMin {
		t.Errorf("Size = %v, want %v", p.Size, parameter.SizeMin)
	}
}

func TestDefaultParamsInRange(t *testing.T) {
	p := DefaultParams()
	if p != p.Clamp() {
		t.Errorf("defaults %+v not within documented ranges", p)
	}
}
