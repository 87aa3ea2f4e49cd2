package game

// Per-category capacity constants. These are a compatibility contract:
// save games written against one set of capacities must be restored
// against the same set, so they change only with the data format version.
const (
	MaxCharacters    = 300
	MaxRoomObjects   = 256
	MaxHotspots      = 50
	MaxRegions       = 16
	MaxInvItems      = 301
	MaxDialogs       = 500
	MaxGUIs          = 300
	MaxAudioChannels = 16
	MaxAudioClips    = 1000

	MaxAudioTypes = 30
	MaxPlugins    = 20

	// DefaultAudioChannels is the channel count used when the game data
	// does not configure one. Channel 0 is reserved for speech, hence
	// the +1 at registration time.
	DefaultAudioChannels = 8
)

// Entity category names. These double as the script-global array names
// bound in the symbol table.
const (
	CategoryCharacter    = "character"
	CategoryRoomObject   = "object"
	CategoryHotspot      = "hotspot"
	CategoryRegion       = "region"
	CategoryInvItem      = "inventory"
	CategoryDialog       = "dialog"
	CategoryGUI          = "gui"
	CategoryAudioChannel = "audiochannel"
	CategoryAudioClip    = "audioclip"
)
