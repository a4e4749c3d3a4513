package debugkit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type BoundsShape int

const (
	BoundsBox BoundsShape = iota
	BoundsSphere
)

// BoundsComponent is a local-space bounding volume, box or sphere.
type BoundsComponent struct {
	Shape       BoundsShape
	HalfExtents mgl32.Vec3 // box
	Radius      float32    // sphere
}

// AABBComponent is the world-space box refreshed from transform + bounds
// every frame by UpdateAABBsSystem.
type AABBComponent struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func (aabb AABBComponent) Center() mgl32.Vec3 {
	return Midpoint(aabb.Min, aabb.Max)
}

func (aabb AABBComponent) Size() mgl32.Vec3 {
	return aabb.Max.Sub(aabb.Min)
}

type SpatialHashGrid struct {
	cellSize float32
	cells    map[uint64][]EntityId
}

func NewSpatialHashGrid(cellSize float32) *SpatialHashGrid {
	if cellSize <= 0 {
		panic("cell size must be positive")
	}
	return &SpatialHashGrid{
		cellSize: cellSize,
		cells:    make(map[uint64][]EntityId),
	}
}

func (grid *SpatialHashGrid) Clear() {
	clear(grid.cells)
}

func (grid *SpatialHashGrid) Insert(id EntityId, aabb AABBComponent) {
	minX, maxX := grid.getCellIndex(aabb.Min.X()), grid.getCellIndex(aabb.Max.X())
	minY, maxY := grid.getCellIndex(aabb.Min.Y()), grid.getCellIndex(aabb.Max.Y())
	minZ, maxZ := grid.getCellIndex(aabb.Min.Z()), grid.getCellIndex(aabb.Max.Z())

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				key := grid.hashKey(x, y, z)
				grid.cells[key] = append(grid.cells[key], id)
			}
		}
	}
}

func (grid *SpatialHashGrid) QueryAABB(aabb AABBComponent) []EntityId {
	minX, maxX := grid.getCellIndex(aabb.Min.X()), grid.getCellIndex(aabb.Max.X())
	minY, maxY := grid.getCellIndex(aabb.Min.Y()), grid.getCellIndex(aabb.Max.Y())
	minZ, maxZ := grid.getCellIndex(aabb.Min.Z()), grid.getCellIndex(aabb.Max.Z())

	unique := make(map[EntityId]struct{})
	var results []EntityId

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				key := grid.hashKey(x, y, z)
				for _, id := range grid.cells[key] {
					if _, ok := unique[id]; !ok {
						unique[id] = struct{}{}
						results = append(results, id)
					}
				}
			}
		}
	}
	return results
}

// QueryRadius returns broadphase candidates around center. The grid only
// stores ids, so callers filter by exact distance if they need it.
func (grid *SpatialHashGrid) QueryRadius(center mgl32.Vec3, radius float32) []EntityId {
	aabb := AABBComponent{
		Min: center.Sub(mgl32.Vec3{radius, radius, radius}),
		Max: center.Add(mgl32.Vec3{radius, radius, radius}),
	}
	return grid.QueryAABB(aabb)
}

func (grid *SpatialHashGrid) getCellIndex(pos float32) int {
	return int(math.Floor(float64(pos / grid.cellSize)))
}

// Simple hash function for 3D coordinates
func (grid *SpatialHashGrid) hashKey(x, y, z int) uint64 {
	// large primes for mixing
	const p1 = 73856093
	const p2 = 19349663
	const p3 = 83492791
	return uint64(x*p1 ^ y*p2 ^ z*p3)
}

type SpatialGridModule struct {
	CellSize float32
}

func (m SpatialGridModule) Install(app *App, cmd *Commands) {
	cellSize := m.CellSize
	if cellSize <= 0 {
		// Reasonable for objects ~1-2 units in size.
		cellSize = 2.0
	}
	cmd.AddResources(NewSpatialHashGrid(cellSize))

	app.UseSystem(
		System(UpdateAABBsSystem).InStage(PreUpdate),
	).UseSystem(
		System(UpdateSpatialGridSystem).InStage(PreUpdate),
	)
}

func UpdateAABBsSystem(cmd *Commands) {
	MakeQuery3[TransformComponent, BoundsComponent, AABBComponent](cmd).Map(func(id EntityId, tr *TransformComponent, bounds *BoundsComponent, aabb *AABBComponent) bool {
		// Abs scale so reflections don't invert the box.
		scaleX := float32(math.Abs(float64(tr.Scale.X())))
		scaleY := float32(math.Abs(float64(tr.Scale.Y())))
		scaleZ := float32(math.Abs(float64(tr.Scale.Z())))

		var halfExtents mgl32.Vec3
		switch bounds.Shape {
		case BoundsSphere:
			r := bounds.Radius * maxFloat32(scaleX, maxFloat32(scaleY, scaleZ))
			halfExtents = mgl32.Vec3{r, r, r}
		default:
			halfExtents = mgl32.Vec3{
				bounds.HalfExtents.X() * scaleX,
				bounds.HalfExtents.Y() * scaleY,
				bounds.HalfExtents.Z() * scaleZ,
			}
		}

		aabb.Min = tr.Position.Sub(halfExtents)
		aabb.Max = tr.Position.Add(halfExtents)
		return true
	})
}

func UpdateSpatialGridSystem(cmd *Commands, grid *SpatialHashGrid) {
	grid.Clear()

	MakeQuery1[AABBComponent](cmd).Map(func(id EntityId, aabb *AABBComponent) bool {
		grid.Insert(id, *aabb)
		return true
	})
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
