package input

// IntentType discriminates menu and session actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // q, Ctrl+C
	IntentConfirm     // Enter: start a run, leave the end screen
	IntentOpenShop    // e on the menu
	IntentBack        // Esc: close shop
	IntentPause       // p during a run
	IntentToggleDebug // `
	IntentBuy         // 1-4 in the shop, Index selects the upgrade
)

// Intent is a discrete command produced by a key press
type Intent struct {
	Type  IntentType
	Index int // Upgrade slot for IntentBuy
}

var commandKeys = map[Key]Intent{
	KeyQuit:    {Type: IntentQuit},
	KeyConfirm: {Type: IntentConfirm},
	KeyShop:    {Type: IntentOpenShop},
	KeyBack:    {Type: IntentBack},
	KeyPause:   {Type: IntentPause},
	KeyDebug:   {Type: IntentToggleDebug},
	KeyBuy1:    {Type: IntentBuy, Index: 0},
	KeyBuy2:    {Type: IntentBuy, Index: 1},
	KeyBuy3:    {Type: IntentBuy, Index: 2},
	KeyBuy4:    {Type: IntentBuy, Index: 3},
}

// IntentFor returns the command bound to k, IntentNone for steering and fire keys
func IntentFor(k Key) Intent {
	return commandKeys[k]
}
