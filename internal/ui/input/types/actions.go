package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search result actions
type MoveResultAction struct {
	Delta int
}

func (a MoveResultAction) Type() string { return "move_result" }

// Storefront actions

// AddToCartAction adds one unit of the focused product
type AddToCartAction struct{}

func (a AddToCartAction) Type() string { return "add_to_cart" }

// OpenDetailsAction shows the focused item full screen
type OpenDetailsAction struct{}

func (a OpenDetailsAction) Type() string { return "open_details" }

type ToggleCartAction struct{}

func (a ToggleCartAction) Type() string { return "toggle_cart" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
