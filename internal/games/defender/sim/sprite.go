package sim

import "github.com/vovakirdan/space-defender/internal/core"

// Size of one cell in the sprite atlas.
const (
	SpriteWidth  = 16
	SpriteHeight = 16
)

// Sprite names a cell of the sprite atlas.
type Sprite int

const (
	SpritePlayerIdle Sprite = iota
	SpritePlayerMoving
	SpritePlayerLaser
	SpriteEnemyIdle
	SpriteEnemyMoving
	SpriteEnemyLaser
)

// atlasX is the left edge of each sprite; all sprites sit on row 0.
var atlasX = [...]int{
	SpritePlayerIdle:   0,
	SpritePlayerMoving: 16,
	SpritePlayerLaser:  32,
	SpriteEnemyIdle:    48,
	SpriteEnemyMoving:  64,
	SpriteEnemyLaser:   80,
}

// SourceRect returns the atlas rectangle for s.
func SourceRect(s Sprite) core.Rect {
	if s < 0 || int(s) >= len(atlasX) {
		return core.Rect{}
	}
	return core.NewRect(atlasX[s], 0, SpriteWidth, SpriteHeight)
}

// Projector maps world positions to screen rectangles.
type Projector struct {
	Origin        core.Point // screen position of world (0, 0)
	Width, Height int        // destination box size
}

// Dest returns the screen rectangle centered on the world position pos.
func (p Projector) Dest(pos core.Point) core.Rect {
	return core.RectFromCenter(p.Origin.Add(pos), p.Width, p.Height)
}

// PresentationAngle converts a heading into a sprite rotation. The art
// points up, so it is turned a further 90°. Only renderers use this.
func PresentationAngle(heading float64) float64 {
	return core.NormalizeDegrees(heading + 90)
}
