package framestack

import (
	"reflect"
	"testing"
)

func TestFrameStackPushTopViewPopFrame(t *testing.T) {
	var s Stack[int]
	s.NewFrame()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if got := s.TopView(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("TopView() = %v, want [1 2 3]", got)
	}

	s.NewFrame()
	s.Push(4)
	if got := s.TopView(); !reflect.DeepEqual(got, []int{4}) {
		t.Fatalf("nested TopView() = %v, want [4]", got)
	}

	s.PopFrame()
	if got := s.TopView(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("TopView() after PopFrame = %v, want [1 2 3]", got)
	}

	s.PopFrame()
	if got := s.TopView(); len(got) != 0 {
		t.Fatalf("TopView() after popping all frames = %v, want empty", got)
	}
}

func TestFrameStackClear(t *testing.T) {
	var s Stack[string]
	s.NewFrame()
	s.Push("a")
	s.Push("b")
	s.Clear()
	s.NewFrame()
	if got := s.TopView(); len(got) != 0 {
		t.Fatalf("TopView() after Clear = %v, want empty", got)
	}
}

func TestFrameStackReserveDoesNotChangeContents(t *testing.T) {
	var s Stack[int]
	s.Reserve(100)
	s.NewFrame()
	for i := 0; i < 10; i++ {
		s.Push(i)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := s.TopView(); !reflect.DeepEqual(got, want) {
		t.Fatalf("TopView() = %v, want %v", got, want)
	}
}
