package shadowflap

import (
	"math/rand"
	"testing"
)

func newTestSpawner(index int, seed int64) *Spawner {
	cfg := testConfig()
	rules := RulesetsFromConfig(cfg.Levels)
	params := DeriveParameters(1, cfg.Obstacles)
	return NewSpawner(rules[index], cfg, params, rand.New(rand.NewSource(seed)))
}

func TestSpawnerObstacleCadence(t *testing.T) {
	s := newTestSpawner(0, 7)

	for frame := range 1200 {
		batch := s.Tick()
		if (batch.Obstacle != nil) != (frame%120 == 0) {
			t.Fatalf("frame %d: obstacle spawned = %v", frame, batch.Obstacle != nil)
		}
		if batch.Projectile != nil {
			t.Fatalf("frame %d: first level never spawns projectiles", frame)
		}
		if o := batch.Obstacle; o != nil {
			if o.Material() != MaterialSoft {
				t.Errorf("frame %d: first level spawned %v", frame, o.Material())
			}
			if top := o.GapTop(); top != 100 && top != 300 && top != 500 {
				t.Errorf("frame %d: gap top %v is not a slot", frame, top)
			}
			if o.X != 1024 {
				t.Errorf("frame %d: spawned at X %v, expected the right edge", frame, o.X)
			}
		}
	}
}

func TestSpawnerRetime(t *testing.T) {
	s := newTestSpawner(0, 7)
	ts := NewTimescale(testConfig().Timescale)
	ts.Increase()
	ts.Increase()
	s.Retime(DeriveParameters(ts.Effect(), testConfig().Obstacles))

	for frame := range 500 {
		batch := s.Tick()
		if (batch.Obstacle != nil) != (frame%53 == 0) {
			t.Fatalf("frame %d: obstacle spawned = %v with period 53", frame, batch.Obstacle != nil)
		}
	}
}

func TestSpawnerSecondLevel(t *testing.T) {
	s := newTestSpawner(1, 11)
	materials := map[Material]int{}
	projectiles := 0
	kinds := map[ProjectileKind]int{}

	for frame := range 12000 {
		batch := s.Tick()
		if o := batch.Obstacle; o != nil {
			materials[o.Material()]++
			if top := o.GapTop(); top < 100 || top >= 500 {
				t.Fatalf("frame %d: gap top %v outside [100, 500)", frame, top)
			}
			if (o.Hazard() != nil) != (o.Material() == MaterialHard) {
				t.Fatalf("frame %d: only hard obstacles carry a hazard", frame)
			}
		}
		if p := batch.Projectile; p != nil {
			if frame%120 != 60 {
				t.Fatalf("frame %d: projectile off the half-period", frame)
			}
			if p.Y < 100 || p.Y >= 500 || p.X != 1024 {
				t.Fatalf("frame %d: projectile spawned at (%v, %v)", frame, p.X, p.Y)
			}
			if p.State() != ProjectileIdle {
				t.Fatalf("frame %d: new projectile state %v", frame, p.State())
			}
			wantLife := 25
			if p.Kind() == KindBomb {
				wantLife = 50
			}
			if p.Lifetime() != wantLife {
				t.Errorf("frame %d: %v lifetime %d, expected %d", frame, p.Kind(), p.Lifetime(), wantLife)
			}
			projectiles++
			kinds[p.Kind()]++
		}
	}

	if materials[MaterialSoft] == 0 || materials[MaterialHard] == 0 {
		t.Errorf("both materials should appear over 100 obstacles: %v", materials)
	}
	if projectiles == 0 || projectiles == 100 {
		t.Errorf("projectiles should spawn on roughly half the opportunities, got %d/100", projectiles)
	}
	if kinds[KindRock] == 0 || kinds[KindBomb] == 0 {
		t.Errorf("both kinds should appear: %v", kinds)
	}
}
