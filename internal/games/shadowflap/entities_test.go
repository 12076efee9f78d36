package shadowflap

import (
	"testing"

	"github.com/vovakirdan/shadowflap/internal/config"
)

func TestFlyerFallSpeedIsCapped(t *testing.T) {
	f := testFlyer()
	limit := testConfig().Flyer.MaxFallSpeed

	for i := range 200 {
		f.ApplyGravity()
		if f.VY > limit {
			t.Fatalf("frame %d: velocity %v exceeds %v", i, f.VY, limit)
		}
	}
	if f.VY != limit {
		t.Errorf("velocity = %v, expected terminal %v", f.VY, limit)
	}
}

func TestFlyerFlapThenGravity(t *testing.T) {
	f := testFlyer()
	f.ApplyGravity() // drop the spawn flap
	y := f.Y

	f.Flap()
	f.Move(WorldParameters{})
	if f.VY >= 0 {
		t.Errorf("velocity = %v after flap, expected upward", f.VY)
	}
	if f.Y >= y {
		t.Errorf("flyer should rise after a flap, y %v -> %v", y, f.Y)
	}
}

func TestFlyerWingAnimation(t *testing.T) {
	f := testFlyer()
	f.Move(WorldParameters{}) // frame 1, spawn flap
	if f.Visual() != VisualFlyerWingsUp {
		t.Errorf("wings should be up on a flap frame")
	}

	for f.frame < 9 {
		f.Move(WorldParameters{})
		if f.Visual() != VisualFlyerWingsDown {
			t.Fatalf("frame %d: wings should be down", f.frame)
		}
	}
	f.Move(WorldParameters{}) // frame 10
	if f.Visual() != VisualFlyerWingsUp {
		t.Errorf("wings should be up every 10th frame")
	}

	f.LevelUp()
	f.Move(WorldParameters{})
	if f.Visual() != VisualFlyerPoweredWingsDown {
		t.Errorf("visual = %v, expected powered wings down", f.Visual())
	}
}

func TestFlyerOutOfBounds(t *testing.T) {
	world := World{W: 1024, H: 768}

	tests := []struct {
		name string
		y    float64
		out  bool
	}{
		{"above", -1, true},
		{"below", 769, true},
		{"top edge", 0, false},
		{"bottom edge", 768, false},
		{"inside", 400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFlyer()
			f.Y = tt.y
			f.VY = 7

			if got := f.CheckOutOfBounds(world); got != tt.out {
				t.Fatalf("CheckOutOfBounds = %v, expected %v", got, tt.out)
			}
			if !tt.out {
				return
			}
			if f.Health().Lives() != 2 {
				t.Errorf("lives = %d, expected 2", f.Health().Lives())
			}
			if f.X != 200 || f.Y != 350 {
				t.Errorf("position = (%v, %v), expected spawn (200, 350)", f.X, f.Y)
			}
			if f.VY != 7 {
				t.Errorf("velocity = %v, should be kept across respawn", f.VY)
			}
		})
	}
}

func TestFlyerLevelUp(t *testing.T) {
	f := testFlyer()

	f.LevelUp()
	if f.Power() != 1 || f.Health().Capacity() != 6 || f.Health().Lives() != 6 {
		t.Errorf("after 1 level-up: power %d, capacity %d, lives %d", f.Power(), f.Health().Capacity(), f.Health().Lives())
	}

	f.LevelUp()
	if f.Power() != 1 {
		t.Errorf("power = %d, should stay at the last variant", f.Power())
	}
	if f.Health().Capacity() != 9 {
		t.Errorf("capacity = %d, expected 9", f.Health().Capacity())
	}
}

func TestHealthClampsAtZero(t *testing.T) {
	h := NewHealth(1)
	h.LoseLife()
	h.LoseLife()
	if h.Lives() != 0 || !h.Exhausted() {
		t.Errorf("lives = %d, expected 0 and exhausted", h.Lives())
	}
}

func TestHazardVisibilityCycle(t *testing.T) {
	h := NewHazard(config.HazardConfig{StayFrames: 30, GapFrames: 20}, testSprites().Hazard)

	for frame := range 150 {
		want := frame%50 < 30
		if h.Visible() != want {
			t.Fatalf("frame %d: visible = %v, expected %v", frame, h.Visible(), want)
		}
		if boxes := h.BoxesAt(500, 300, 468); (len(boxes) == 2) != want {
			t.Fatalf("frame %d: %d boxes while visible=%v", frame, len(boxes), want)
		}
		h.Tick()
	}
}

func TestGateGeometry(t *testing.T) {
	g := NewGateObstacle(500, 300, MaterialSoft, testParts())

	top, bottom := g.Segments()
	if top.Bottom() != 300 {
		t.Errorf("top segment ends at %v, expected gap top 300", top.Bottom())
	}
	if bottom.Top() != 468 {
		t.Errorf("bottom segment starts at %v, expected gap bottom 468", bottom.Top())
	}
	if top.Left() != 468 || top.Right() != 532 {
		t.Errorf("segment spans x [%v, %v], expected [468, 532]", top.Left(), top.Right())
	}
	if g.Hazard() != nil {
		t.Error("soft obstacles have no hazard")
	}
	if len(g.Boxes()) != g.SegmentCount() {
		t.Errorf("soft obstacle has %d boxes, expected %d", len(g.Boxes()), g.SegmentCount())
	}
}

func TestHardGateHazardBoxes(t *testing.T) {
	g := NewGateObstacle(500, 300, MaterialHard, testParts())

	boxes := g.Boxes()
	if len(boxes) != 4 {
		t.Fatalf("visible hard obstacle has %d boxes, expected 4", len(boxes))
	}
	if boxes[2].Top() != 300 {
		t.Errorf("top flame starts at %v, expected the gap top", boxes[2].Top())
	}
	if boxes[3].Bottom() != 468 {
		t.Errorf("bottom flame ends at %v, expected the gap bottom", boxes[3].Bottom())
	}

	for range 30 {
		g.Move(WorldParameters{AmbientVelocity: 1})
	}
	if len(g.Boxes()) != 2 {
		t.Errorf("hidden hazard should not add boxes, got %d", len(g.Boxes()))
	}
	if g.X != 470 {
		t.Errorf("X = %v, expected 470", g.X)
	}
}

func TestGateDestructionMatrix(t *testing.T) {
	tests := []struct {
		material Material
		kind     ProjectileKind
		want     bool
	}{
		{MaterialSoft, KindRock, true},
		{MaterialSoft, KindBomb, true},
		{MaterialHard, KindRock, false},
		{MaterialHard, KindBomb, true},
	}

	for _, tt := range tests {
		g := NewGateObstacle(500, 300, tt.material, testParts())
		if got := g.CollideProjectile(tt.kind); got != tt.want {
			t.Errorf("%v vs %v: destroyed = %v, expected %v", tt.material, tt.kind, got, tt.want)
		}
	}
}

func TestGateOffLeft(t *testing.T) {
	g := NewGateObstacle(33, 300, MaterialSoft, testParts())
	if g.OffLeft() {
		t.Error("obstacle with its right edge at 65 is still on screen")
	}
	g.X = -32
	if !g.OffLeft() {
		t.Error("obstacle with its right edge at 0 is off screen")
	}
}

func TestParseMaterial(t *testing.T) {
	if m, ok := ParseMaterial("hard"); !ok || m != MaterialHard {
		t.Errorf("ParseMaterial(hard) = %v, %v", m, ok)
	}
	if _, ok := ParseMaterial("glass"); ok {
		t.Error("unknown material should not parse")
	}
	if MaterialSoft.String() != "soft" {
		t.Errorf("String() = %q", MaterialSoft.String())
	}
}

func TestProjectileLifecycle(t *testing.T) {
	s := testSprites()
	p := NewProjectile(600, 300, KindRock, s.Rock, 25, 5)
	world := World{W: 1024, H: 768}

	if p.Shoot() {
		t.Error("shooting an idle projectile should be a no-op")
	}
	if p.State() != ProjectileIdle {
		t.Fatalf("state = %v, expected idle", p.State())
	}

	p.Move(WorldParameters{AmbientVelocity: 3})
	if p.X != 597 {
		t.Errorf("idle projectile should drift left, X = %v", p.X)
	}

	f := testFlyer()
	if !p.Equip(f) {
		t.Fatal("equip should succeed on an idle projectile")
	}
	if p.Equip(f) {
		t.Error("equipping twice should be a no-op")
	}
	p.Move(WorldParameters{AmbientVelocity: 3})
	if p.X != f.X+32 || p.Y != f.Y {
		t.Errorf("equipped projectile at (%v, %v), expected flyer's right edge (%v, %v)", p.X, p.Y, f.X+32, f.Y)
	}
	if p.Expired(world) {
		t.Error("equipped projectile never expires")
	}

	if !p.Shoot() {
		t.Fatal("shoot should succeed on an equipped projectile")
	}
	x := p.X
	for i := 1; i < 25; i++ {
		p.Move(WorldParameters{AmbientVelocity: 3})
		if p.State() != ProjectileShot {
			t.Fatalf("frame %d: state = %v, expected shot", i, p.State())
		}
	}
	if p.X != x+24*5 {
		t.Errorf("shot projectile X = %v, expected %v", p.X, x+24*5)
	}
	p.Move(WorldParameters{})
	if p.State() != ProjectileDestroyed {
		t.Errorf("state = %v after lifetime, expected destroyed", p.State())
	}
	if !p.Expired(world) {
		t.Error("destroyed projectile should expire")
	}
}

func TestProjectileExpiryOffScreen(t *testing.T) {
	world := World{W: 1024, H: 768}
	s := testSprites()

	idle := NewProjectile(-16, 300, KindRock, s.Rock, 25, 5)
	if !idle.Expired(world) {
		t.Error("idle projectile fully past the left edge should expire")
	}
	idle.X = -15
	if idle.Expired(world) {
		t.Error("idle projectile still partly visible should not expire")
	}

	shot := shotProjectile(t, KindBomb, 1042, 300)
	if !shot.Expired(world) {
		t.Error("shot projectile fully past the right edge should expire")
	}
}

func TestFlyerEquipAndShootNoOps(t *testing.T) {
	s := testSprites()
	f := testFlyer()

	if f.Shoot() {
		t.Error("shoot without a projectile should be a no-op")
	}

	a := NewProjectile(200, 350, KindRock, s.Rock, 25, 5)
	b := NewProjectile(200, 350, KindBomb, s.Bomb, 50, 5)
	if !f.Equip(a) {
		t.Fatal("first equip should succeed")
	}
	if f.Equip(b) {
		t.Error("second equip should be a no-op")
	}
	if b.State() != ProjectileIdle {
		t.Errorf("unequipped projectile state = %v, expected idle", b.State())
	}
	if f.Equipped() != a {
		t.Error("first projectile should stay equipped")
	}

	if !f.Shoot() || a.State() != ProjectileShot || f.Equipped() != nil {
		t.Error("shoot should launch and release the equipped projectile")
	}

	f.Equip(b)
	f.Disarm()
	if b.State() != ProjectileDestroyed || f.Equipped() != nil {
		t.Error("disarm should discard the equipped projectile")
	}
}

func TestObstacleQueue(t *testing.T) {
	parts := testParts()
	q := &ObstacleQueue{}
	a := NewGateObstacle(150, 300, MaterialSoft, parts)
	b := NewGateObstacle(400, 300, MaterialSoft, parts)
	c := NewGateObstacle(700, 300, MaterialHard, parts)
	q.Push(a)
	q.Push(b)
	q.Push(c)

	if q.Head() != a {
		t.Fatal("head should be the oldest obstacle")
	}
	if !q.Remove(a) || q.Remove(a) {
		t.Error("Remove should succeed exactly once")
	}
	if q.Head() != b {
		t.Error("head should skip removed obstacles")
	}
	if n := q.AdvancePassed(200); n != 0 {
		t.Errorf("removed obstacle must not score, moved %d", n)
	}

	b.X = 199
	if n := q.AdvancePassed(200); n != 1 {
		t.Errorf("AdvancePassed = %d, expected 1", n)
	}
	if q.Head() != c {
		t.Error("head should be the next pending obstacle")
	}

	q.Compact()
	if q.Len() != 2 || len(q.Pending()) != 1 || len(q.Passed()) != 1 {
		t.Errorf("after compact: len %d, pending %d, passed %d", q.Len(), len(q.Pending()), len(q.Passed()))
	}

	b.X = -40
	q.Compact()
	if len(q.Passed()) != 0 {
		t.Error("passed obstacle off the left edge should be dropped")
	}
}
