package domain

type ActionType string

const (
	ActionSetSearch      ActionType = "set_search"
	ActionSetLocation    ActionType = "set_location"
	ActionSetTab         ActionType = "set_tab"
	ActionSetViewMode    ActionType = "set_view_mode"
	ActionToggleViewMode ActionType = "toggle_view_mode"
	ActionToggleFilters  ActionType = "toggle_filters"
	ActionSelectCategory ActionType = "select_category"
	ActionSetSort        ActionType = "set_sort"
	ActionToggleFavorite ActionType = "toggle_favorite"
	ActionViewDetails    ActionType = "view_details"
	ActionContactVendor  ActionType = "contact_vendor"
)

type ContactChannel string

const (
	ContactCall    ContactChannel = "call"
	ContactEmail   ContactChannel = "email"
	ContactProfile ContactChannel = "profile"
)

// Action is one discrete user interaction against a session.
type Action struct {
	Type    ActionType     `json:"type" validate:"required,oneof=set_search set_location set_tab set_view_mode toggle_view_mode toggle_filters select_category set_sort toggle_favorite view_details contact_vendor"`
	Value   string         `json:"value,omitempty" validate:"max=200"`
	Target  string         `json:"target,omitempty" validate:"max=64"`
	Channel ContactChannel `json:"channel,omitempty" validate:"omitempty,oneof=call email profile"`
}
