package input

// Key is a front-end independent key identity
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyConfirm
	KeyShop
	KeyBack
	KeyPause
	KeyQuit
	KeyDebug
	KeyBuy1
	KeyBuy2
	KeyBuy3
	KeyBuy4
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:    "none",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyFire:    "fire",
	KeyConfirm: "confirm",
	KeyShop:    "shop",
	KeyBack:    "back",
	KeyPause:   "pause",
	KeyQuit:    "quit",
	KeyDebug:   "debug",
	KeyBuy1:    "buy1",
	KeyBuy2:    "buy2",
	KeyBuy3:    "buy3",
	KeyBuy4:    "buy4",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// runeKeys maps printable keys; wasd and hjkl both steer
var runeKeys = map[rune]Key{
	'w': KeyUp, 'k': KeyUp,
	's': KeyDown, 'j': KeyDown,
	'a': KeyLeft, 'h': KeyLeft,
	'd': KeyRight, 'l': KeyRight,
	' ': KeyFire,
	'e': KeyShop,
	'p': KeyPause,
	'q': KeyQuit,
	'`': KeyDebug,
	'1': KeyBuy1,
	'2': KeyBuy2,
	'3': KeyBuy3,
	'4': KeyBuy4,
}

// KeyForRune resolves a printable key, case-insensitive for letters
func KeyForRune(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return runeKeys[r]
}
