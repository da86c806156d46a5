package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Cross(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)
	result := x.Cross(y)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestTriangleArea(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	expected := 0.5
	if math.Abs(tri.Area()-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, tri.Area())
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	expected := NewVector3(1, 1, 0)
	if tri.Center() != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, tri.Center())
	}
}

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(-1, 2, 0))
	bbox.Extend(NewVector3(3, -2, 5))

	expectedMin := NewVector3(-1, -2, 0)
	expectedMax := NewVector3(3, 2, 5)

	if bbox.Min != expectedMin {
		t.Errorf("Extend failed: expected min %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Extend failed: expected max %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(1, 1, 1))
	bbox.Extend(NewVector3(4, 3, 2))

	expected := NewVector3(3, 2, 1)
	if bbox.Size() != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, bbox.Size())
	}
}

func TestBoundingBoxMaxDimension(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 7, 3))

	expected := 7.0
	if math.Abs(bbox.MaxDimension()-expected) > 1e-10 {
		t.Errorf("MaxDimension failed: expected %v, got %v", expected, bbox.MaxDimension())
	}
}
