package schemas

// SuggestionType defines the action a suggestion asks the player to take.
type SuggestionType string

const (
	SuggestionBuy   SuggestionType = "buy"
	SuggestionSell  SuggestionType = "sell"
	SuggestionAbort SuggestionType = "abort"
	SuggestionWait  SuggestionType = "wait"
)

// ItemNone is the live-client sentinel for "no item selected".
const ItemNone = -1

// Suggestion is the recommended trade action for the current cycle. It is
// produced externally, read-only to the plugin, and replaced wholesale when a
// new suggestion arrives.
type Suggestion struct {
	Type     SuggestionType `json:"type"`
	BoxID    int            `json:"box_id"`
	ItemID   int            `json:"item_id"`
	ItemName string         `json:"name"`
	Price    int            `json:"price"`
	// Quantity 0 means "use the maximum available quantity" rather than an
	// explicit amount.
	Quantity int `json:"quantity"`
	// Dump marks a liquidation suggestion; highlights use a different shade.
	Dump bool `json:"dump"`
}

// LoginResponse is the backend's answer to a successful copilot login. It is
// cached in memory and persisted to disk by the session manager.
type LoginResponse struct {
	UserID  int    `json:"user_id"`
	JWT     string `json:"jwt"`
	Message string `json:"message,omitempty"`
}

// ItemDef is the subset of the client's item definition the plugin reads.
// A noted item is the bank-note variant of another item; LinkedID points at
// the unnoted counterpart.
type ItemDef struct {
	ID       int
	Noted    bool
	LinkedID int
}
