// Package messages defines how designkit reports outcomes at each layer.
//
// # Library layer (internal/tokens, internal/theme, internal/config, internal/export)
//
// Return standard Go errors. Sentinel errors are declared with errors.New and
// wrapped with fmt.Errorf and %w, so callers can use errors.Is:
//
//	p, err := theme.ParsePreset(name)
//	if errors.Is(err, theme.ErrUnknownPreset) {
//	    ...
//	}
//
// Helper available: messages.WrapError(err, "context") as a clearer
// alternative to fmt.Errorf("context: %w", err).
//
// # Registry layer (internal/registry)
//
// The registry never returns errors. A redundant or invalid Configure is
// reported through internal/logging and the call returns false.
//
// # TUI layer (internal/picker)
//
// Return a tea.Cmd that produces a types.StatusMsg. The model stores the
// message and renders it with ui.RenderMessage:
//
//	case types.StatusMsg:
//	    m.status = msg
//
// Use ErrorCmd for failures, SuccessCmd for completed actions and InfoCmd for
// everything else. Keep messages short and start them with what happened.
//
// # CLI layer (cmd/designkit)
//
// Commands return errors from RunE. main prints them once and exits 1.
package messages
