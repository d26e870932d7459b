package tokens

import (
	"errors"
	"fmt"
)

// ErrIncompleteTokens is wrapped by every error Validate returns.
var ErrIncompleteTokens = errors.New("incomplete design tokens")

// Validate checks that every token is populated with a usable value. Zero
// radii, flat shadows and clear tints are allowed. All problems are reported,
// joined into one error.
func Validate(t DesignTokens) error {
	var errs []error
	missing := func(group, name string) {
		errs = append(errs, fmt.Errorf("%w: %s.%s is not set", ErrIncompleteTokens, group, name))
	}
	invalid := func(group, name, reason string) {
		errs = append(errs, fmt.Errorf("%w: %s.%s: %s", ErrIncompleteTokens, group, name, reason))
	}

	for _, role := range t.Colors.Roles() {
		if role.Color.Light == "" && role.Color.Dark == "" {
			missing("colors", role.Name)
		}
	}

	for _, s := range t.Typography.Styles() {
		if s.Style.Size <= 0 || !s.Style.Weight.Valid() || !s.Style.Design.Valid() {
			missing("typography", s.Name)
		}
	}

	prev := 0.0
	for _, step := range t.Spacing.Steps() {
		if step.Value <= 0 {
			missing("spacing", step.Name)
			continue
		}
		if step.Value < prev {
			errs = append(errs, fmt.Errorf("%w: spacing.%s (%g) is smaller than the step before it (%g)",
				ErrIncompleteTokens, step.Name, step.Value, prev))
		}
		prev = step.Value
	}

	for _, step := range t.Radii.Steps() {
		if step.Value < 0 {
			invalid("radii", step.Name, fmt.Sprintf("radius %g is negative", step.Value))
		}
	}

	for _, tier := range t.Shadows.Tiers() {
		checkShadow("shadows", tier.Name, tier.Shadow, invalid)
	}

	checkTint("glass", "tint", t.Glass.Tint, invalid)
	checkTint("glass", "strongTint", t.Glass.StrongTint, invalid)
	checkTint("glass", "border", t.Glass.Border, invalid)
	checkShadow("glass", "shadow", t.Glass.Shadow, invalid)

	return errors.Join(errs...)
}

// A shadow with zero radius and a clear color is a flat surface.
func checkShadow(group, name string, s ShadowToken, invalid func(group, name, reason string)) {
	if s.Radius < 0 {
		invalid(group, name, fmt.Sprintf("radius %g is negative", s.Radius))
	}
	checkTint(group, name, s.Color, invalid)
}

// A tint with zero alpha is clear and needs no color.
func checkTint(group, name string, t Tint, invalid func(group, name, reason string)) {
	switch {
	case t.Alpha < 0 || t.Alpha > 1:
		invalid(group, name, fmt.Sprintf("alpha %g is outside [0, 1]", t.Alpha))
	case t.Alpha > 0 && t.Color == "":
		invalid(group, name, "color is not set")
	}
}
