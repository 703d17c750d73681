package taralli

// ElementKind tags the visual element variants.
type ElementKind int

const (
	// ElementUndefined occupies a slot but is inert: it is never selectable
	// and carries no label or icon.
	ElementUndefined ElementKind = iota
	ElementLabel
	ElementTldLabel
	ElementIcon
)

// VisualElement is one slot of the extended grid. AdjustedIndex is the index
// into the key's raw alternate sequence this slot displays.
type VisualElement struct {
	Kind          ElementKind
	Label         string
	Icon          IconRef
	AdjustedIndex int
}

// Icon resource names for the semantic alternate codes.
const (
	IconSettings             = "ic_settings"
	IconSwitchToText         = "ic_keyboard_text"
	IconSwitchToMedia        = "ic_keyboard_media"
	IconSwitchToClipboard    = "ic_clipboard"
	IconToggleOneHandedLeft  = "ic_one_handed_left"
	IconToggleOneHandedRight = "ic_one_handed_right"
)

func iconNameForCode(code int32) (string, bool) {
	switch code {
	case CodeSettings:
		return IconSettings, true
	case CodeSwitchToText:
		return IconSwitchToText, true
	case CodeSwitchToMedia:
		return IconSwitchToMedia, true
	case CodeSwitchToClipboard:
		return IconSwitchToClipboard, true
	case CodeToggleOneHandedLeft:
		return IconToggleOneHandedLeft, true
	case CodeToggleOneHandedRight:
		return IconToggleOneHandedRight, true
	}
	return "", false
}

// resolveLabel treats the raw label as a string resource id first and falls
// back to the raw text when the resolver does not know it, so literal
// character labels pass through untouched.
func resolveLabel(res ResourceResolver, raw string) string {
	if s, err := res.String(raw); err == nil {
		return s
	}
	return raw
}

// classifyAlternate maps one alternate to its visual element. Semantic codes
// resolve to icons, the TLD code renders its display string in the smaller
// TLD style, and everything else renders as a plain label. A failed icon
// lookup degrades the slot to undefined rather than failing the extension.
func classifyAlternate(res ResourceResolver, kind KeyKind, alt AlternateData, adjusted int) VisualElement {
	if kind != KindText && kind != KindMedia {
		return VisualElement{Kind: ElementUndefined, AdjustedIndex: adjusted}
	}

	if name, ok := iconNameForCode(alt.Code); ok {
		ref, err := res.Icon(name)
		if err != nil {
			return VisualElement{Kind: ElementUndefined, AdjustedIndex: adjusted}
		}
		return VisualElement{Kind: ElementIcon, Icon: ref, AdjustedIndex: adjusted}
	}

	if alt.Code == CodeTLD {
		return VisualElement{Kind: ElementTldLabel, Label: resolveLabel(res, alt.Label), AdjustedIndex: adjusted}
	}

	label := alt.Label
	if label == "" && alt.Code > CodeSpace {
		label = string(rune(alt.Code))
	}
	return VisualElement{Kind: ElementLabel, Label: resolveLabel(res, label), AdjustedIndex: adjusted}
}
