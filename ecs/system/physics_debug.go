package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
	"golang.org/x/image/colornames"
)

const debugDotSize = 4

func DrawPhysicsDebug(space *cp.Space, screen *ebiten.Image) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &physicsDebugDrawer{screen: screen})
}

func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	st, ok := ecs.Get(w, player, component.ControllerStateComponent.Kind())
	if !ok {
		return
	}
	gravity := "on"
	if gs, ok := ecs.Get(w, player, component.GravityScaleComponent.Kind()); ok && gs.Suspended() {
		gravity = "off"
	}
	summary := ClassifyContacts(player, w.Contacts())
	text := fmt.Sprintf("Mode: %s\nFacing: %s\nJumps: %d\nLatched: %v\nGravity: %s\nBegan: %v\nActive: %v\nEnded: %v",
		st.Mode, st.Facing, st.JumpCount, st.JumpLatched, gravity,
		summary.Began.Tags(), summary.Active.Tags(), summary.Ended.Tags())
	ebitenutil.DebugPrintAt(screen, text, 10, 30)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	vector.StrokeCircle(d.screen, float32(pos.X), float32(pos.Y), float32(radius), 1, toNRGBA(outline), false)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, toNRGBA(fill))
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, toNRGBA(outline))
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	clr := toNRGBA(outline)
	for i := 0; i < count; i++ {
		d.drawLine(verts[i], verts[(i+1)%count], clr)
	}
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := float32(size / 2)
	vector.FillRect(d.screen, float32(pos.X)-half, float32(pos.Y)-half, half*2, half*2, toNRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.Lime)
}

// ShapeColor tells sensors apart from solid shapes.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return toFColor(colornames.Gold)
	}
	return toFColor(colornames.Forestgreen)
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Orange)
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red)
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, clr color.Color) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
}

func toFColor(c color.RGBA) cp.FColor {
	return cp.FColor{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
