package analyzer

import "testing"

func TestModulePackageName(t *testing.T) {
	cases := map[Module]string{
		"myapp":         "myapp",
		"myapp.high":    "myapp",
		"myapp.high.api": "myapp",
	}
	for m, want := range cases {
		if got := m.PackageName(); got != want {
			t.Errorf("%s.PackageName() = %q, want %q", m, got, want)
		}
	}
}

func TestModuleParent(t *testing.T) {
	parent, ok := Module("myapp.high.api").Parent()
	if !ok || parent != "myapp.high" {
		t.Fatalf("Parent() = (%q, %v), want (myapp.high, true)", parent, ok)
	}

	if _, ok := Module("myapp").Parent(); ok {
		t.Fatalf("top-level module should have no parent")
	}
}

func TestModuleIsChildOf(t *testing.T) {
	if !Module("myapp.high").IsChildOf("myapp") {
		t.Error("myapp.high should be a child of myapp")
	}
	if Module("myapp.high.api").IsChildOf("myapp") {
		t.Error("myapp.high.api is a grandchild, not a child, of myapp")
	}
}

func TestModuleIsDescendantOf(t *testing.T) {
	if !Module("myapp.high.api").IsDescendantOf("myapp") {
		t.Error("myapp.high.api should descend from myapp")
	}
	if !Module("myapp.high.api").IsDescendantOf("myapp.high") {
		t.Error("myapp.high.api should descend from myapp.high")
	}
	if Module("myapp").IsDescendantOf("myapp") {
		t.Error("a module is not its own descendant")
	}
	if Module("myapp2.high").IsDescendantOf("myapp") {
		t.Error("myapp2.high should not be considered a descendant of myapp (prefix collision)")
	}
}

func TestModuleEqualityIsByValue(t *testing.T) {
	a := Module("myapp.high")
	b := Module("myapp." + "high")
	if a != b {
		t.Fatalf("modules with equal string content must compare equal")
	}
}
