package prefabs

import (
	"math"
	"testing"
)

func TestLoadTuning(t *testing.T) {
	tuning, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tuning.World.TickRate != 60 {
		t.Fatalf("expected tick rate 60, got %v", tuning.World.TickRate)
	}
	if math.Abs(tuning.DT()-1.0/60) > 1e-12 {
		t.Fatalf("unexpected dt %v", tuning.DT())
	}
	if tuning.Player.Collider.Width != 24 || tuning.Player.Collider.Height != 32 {
		t.Fatalf("unexpected collider %+v", tuning.Player.Collider)
	}
	if tuning.World.Gravity >= 0 {
		t.Fatalf("gravity should be negative, got %v", tuning.World.Gravity)
	}
}

func TestDecodeSpecKeepsOmittedAndExplicitZero(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want WorldSpec
	}{
		{
			name: "omitted keys keep defaults",
			yaml: "gravity: -500\n",
			want: WorldSpec{Name: "world", TickRate: 60, Gravity: -500, LandingTolerance: 4, ContactSkin: 0.5},
		},
		{
			name: "explicit zero survives",
			yaml: "contact_skin: 0\nlanding_tolerance: 0\n",
			want: WorldSpec{Name: "world", TickRate: 60, Gravity: -900},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			if err := decodeSpec("world.yaml", []byte(tt.yaml), &tuning.World); err != nil {
				t.Fatalf("decodeSpec: %v", err)
			}
			if tuning.World != tt.want {
				t.Fatalf("got %+v, want %+v", tuning.World, tt.want)
			}
			if err := tuning.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestDecodeSpecRejectsBadYAML(t *testing.T) {
	var spec PlayerSpec
	if err := decodeSpec("player.yaml", []byte("move_speed: [fast"), &spec); err == nil {
		t.Fatalf("expected an unmarshal error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		ok     bool
	}{
		{"defaults", func(*Tuning) {}, true},
		{"zero_tick_rate", func(t *Tuning) { t.World.TickRate = 0 }, false},
		{"upward_gravity", func(t *Tuning) { t.World.Gravity = 10 }, false},
		{"negative_jump", func(t *Tuning) { t.Player.MaxJumpHeight = -1 }, false},
		{"negative_collider", func(t *Tuning) { t.Player.Collider.Width = -1 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tc.mutate(&tuning)
			err := tuning.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestScriptPaths(t *testing.T) {
	cases := map[string]string{
		"patrol.tengo":                 "scripts/patrol.tengo",
		"scripts/patrol.tengo":         "scripts/patrol.tengo",
		"prefabs/scripts/bullet.tengo": "scripts/bullet.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := LoadScript("bullet.tengo"); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if !IsScriptFile("a/b/patrol.TENGO") || IsScriptFile("world.yaml") {
		t.Fatalf("IsScriptFile misclassified")
	}
	if !IsSpecFile("world.yml") || IsSpecFile("bullet.tengo") {
		t.Fatalf("IsSpecFile misclassified")
	}
}
