package tetrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnCells(t *testing.T) {
	p := Spawn(KindT, 4, 0)

	assert.Equal(t, KindT, p.Kind())
	assert.Equal(t, 0, p.Rotation())
	assert.Equal(t, Point{X: 4, Y: 0}, p.Origin())
	assert.Equal(t, [NumBlocks]Point{{4, 0}, {5, 0}, {6, 0}, {5, 1}}, p.Cells())
}

func TestPieceAlwaysHasFourDistinctCells(t *testing.T) {
	for _, k := range allKinds() {
		p := Spawn(k, 3, 5)
		for i := 0; i < 8; i++ {
			seen := map[Point]bool{}
			for _, c := range p.Cells() {
				seen[c] = true
			}
			assert.Len(t, seen, NumBlocks, "%v rotation %d", k, p.Rotation())
			p.RotateRight()
		}
	}
}

func TestRotationIsCyclic(t *testing.T) {
	for _, k := range allKinds() {
		t.Run(k.String(), func(t *testing.T) {
			p := Spawn(k, 2, 2)
			start := p.Cells()

			for i := 0; i < 4; i++ {
				p.RotateRight()
			}
			assert.Equal(t, start, p.Cells())
			assert.Equal(t, 0, p.Rotation())

			for i := 0; i < 4; i++ {
				p.RotateLeft()
			}
			assert.Equal(t, start, p.Cells())
		})
	}
}

func TestRotateLeftUndoesRotateRight(t *testing.T) {
	p := Spawn(KindL, 4, 0)
	p.RotateRight()
	assert.Equal(t, 1, p.Rotation())
	p.RotateLeft()
	assert.Equal(t, 0, p.Rotation())

	p.RotateLeft()
	assert.Equal(t, 3, p.Rotation(), "left from 0 wraps to 3")
}

func TestSquareIgnoresRotation(t *testing.T) {
	p := Spawn(KindO, 4, 0)
	start := p.Cells()

	p.RotateLeft()
	assert.Equal(t, start, p.Cells())
	p.RotateRight()
	p.RotateRight()
	assert.Equal(t, start, p.Cells())
	assert.Equal(t, 0, p.Rotation())
}

func TestTranslations(t *testing.T) {
	p := Spawn(KindS, 4, 0)
	start := p.Cells()

	p.MoveLeft()
	p.StepDown()
	p.StepDown()
	p.MoveRight()
	p.MoveRight()

	for i, c := range p.Cells() {
		assert.Equal(t, start[i].X+1, c.X)
		assert.Equal(t, start[i].Y+2, c.Y)
	}
	assert.Equal(t, Point{X: 5, Y: 2}, p.Origin())
}

func TestIncrementalShiftMatchesTable(t *testing.T) {
	for _, k := range allKinds() {
		p := Spawn(k, 4, 0)
		p.RotateRight()
		p.MoveLeft()
		p.StepDown()
		p.StepDown()

		fresh := p.Copy()
		fresh.SetPosition(p.Origin().X, p.Origin().Y)
		assert.Equal(t, fresh.Cells(), p.Cells(), "%v", k)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	p := Spawn(KindJ, 4, 0)
	trial := p.Copy()
	trial.MoveRight()
	trial.RotateRight()

	assert.Equal(t, Point{X: 4, Y: 0}, p.Origin())
	assert.Equal(t, 0, p.Rotation())
	assert.NotEqual(t, p.Cells(), trial.Cells())
}

func TestSetPositionKeepsRotation(t *testing.T) {
	p := Spawn(KindI, 11, 2)
	p.RotateRight()
	p.SetPosition(4, 0)

	assert.Equal(t, 1, p.Rotation())
	assert.Equal(t, [NumBlocks]Point{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, p.Cells())
}
