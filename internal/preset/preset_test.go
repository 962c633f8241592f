package preset

import "testing"

func TestGet_Known(t *testing.T) {
	p, ok := Get("sketch")
	if !ok {
		t.Fatal("sketch preset missing")
	}
	if len(p.Chain) != 2 || p.Chain[0] != "grayscale" || p.Chain[1] != "edge" {
		t.Errorf("sketch chain = %v", p.Chain)
	}
}

func TestGet_Unknown(t *testing.T) {
	p, ok := Get("vaporwave")
	if ok {
		t.Error("unknown preset should not resolve")
	}
	if len(p.Chain) != 0 {
		t.Errorf("zero preset should carry no chain, got %v", p.Chain)
	}
}

func TestNames_AllResolve(t *testing.T) {
	for _, name := range Names() {
		p, ok := Get(name)
		if !ok {
			t.Errorf("listed preset %q does not resolve", name)
		}
		if len(p.Chain) == 0 {
			t.Errorf("preset %q has an empty chain", name)
		}
		if p.Name != name {
			t.Errorf("preset %q reports name %q", name, p.Name)
		}
	}
}
