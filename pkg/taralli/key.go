package taralli

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Key codes for semantic (non-literal) alternates. Literal character keys
// carry their unicode code point, which is always above CodeSpace.
const (
	CodeSpace int32 = 32

	CodeTLD                  int32 = -255
	CodeSettings             int32 = -301
	CodeSwitchToText         int32 = -302
	CodeSwitchToMedia        int32 = -303
	CodeSwitchToClipboard    int32 = -304
	CodeToggleOneHandedLeft  int32 = -305
	CodeToggleOneHandedRight int32 = -306
)

// KeyKind discriminates the key variants the engine understands.
type KeyKind int

const (
	KindText KeyKind = iota
	KindMedia
	KindOther
)

// Orientation of the device the keyboard is laid out for.
type Orientation int

const (
	OrientationPortrait Orientation = iota
	OrientationLandscape
)

// AlternateData is one long-press alternate of a key. At most one entry in a
// key's alternate list is marked Main and at most one is marked Hint.
type AlternateData struct {
	Code  int32
	Label string
	Main  bool
	Hint  bool
}

// Key is the pressed-key collaborator. The engine only reads from it; the
// keyboard view owns the key and its alternate list.
type Key interface {
	Bounds() sdl.Rect
	Code() int32
	Label() string
	Kind() KeyKind
	HasAlternates() bool
	AlternateCount() int
	AlternateAt(i int) AlternateData
}

// KeyboardView is the read-only view collaborator supplying the measurements
// the engine needs to anchor popups inside the keyboard.
type KeyboardView interface {
	// MeasuredWidth is the full keyboard width in device pixels.
	MeasuredWidth() int32
	// DesiredKey is the reference key bounds (nominal key size), which may
	// differ from any pressed key's actual bounds.
	DesiredKey() sdl.Rect
	Orientation() Orientation
	// IsCompactBar reports whether the view is a compact bar sub-keyboard
	// rather than a full keyboard.
	IsCompactBar() bool
}

// SimpleKey is a plain value implementation of Key.
type SimpleKey struct {
	KeyBounds  sdl.Rect
	KeyCode    int32
	KeyLabel   string
	KeyKind    KeyKind
	Alternates []AlternateData
}

func (k SimpleKey) Bounds() sdl.Rect  { return k.KeyBounds }
func (k SimpleKey) Code() int32       { return k.KeyCode }
func (k SimpleKey) Label() string     { return k.KeyLabel }
func (k SimpleKey) Kind() KeyKind     { return k.KeyKind }
func (k SimpleKey) HasAlternates() bool {
	return len(k.Alternates) > 0
}
func (k SimpleKey) AlternateCount() int { return len(k.Alternates) }
func (k SimpleKey) AlternateAt(i int) AlternateData {
	return k.Alternates[i]
}

// StaticView is a fixed-measurement implementation of KeyboardView.
type StaticView struct {
	Width        int32
	ReferenceKey sdl.Rect
	Orient       Orientation
	CompactBar   bool
}

func (v StaticView) MeasuredWidth() int32     { return v.Width }
func (v StaticView) DesiredKey() sdl.Rect     { return v.ReferenceKey }
func (v StaticView) Orientation() Orientation { return v.Orient }
func (v StaticView) IsCompactBar() bool       { return v.CompactBar }
